package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes). Transactions
	// start as BEGIN IMMEDIATE, matching the production DSN.
	db, err := sql.Open("sqlite", "file::memory:?_txlock=immediate")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every :memory: connection is its own database, so the pool must stay
	// on one connection.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded migrations.
//
//nolint:funlen // Database schema DDL
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Member table
		CREATE TABLE member (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			member_number VARCHAR(20) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			join_date DATE NOT NULL,
			is_active BOOLEAN DEFAULT TRUE NOT NULL
		);

		-- Savings account table
		CREATE TABLE savings_account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			member_id VARCHAR(36) NOT NULL,
			account_number VARCHAR(20) NOT NULL UNIQUE,
			balance FLOAT DEFAULT 0 NOT NULL,
			opened_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(member_id) REFERENCES member(id) ON DELETE CASCADE
		);

		-- Savings transaction table
		CREATE TABLE savings_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			member_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			type VARCHAR(10) NOT NULL,
			amount FLOAT NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(account_id) REFERENCES savings_account(id) ON DELETE CASCADE,
			FOREIGN KEY(member_id) REFERENCES member(id) ON DELETE CASCADE
		);

		-- SHU percentage policy table
		CREATE TABLE shu_policy (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			fiscal_year INTEGER NOT NULL,
			is_active BOOLEAN DEFAULT FALSE NOT NULL,
			reserve_pct FLOAT NOT NULL,
			member_pool_pct FLOAT NOT NULL,
			management_pct FLOAT NOT NULL,
			staff_pct FLOAT NOT NULL,
			social_fund_pct FLOAT NOT NULL,
			capital_share_pct FLOAT NOT NULL,
			transaction_share_pct FLOAT NOT NULL,
			description TEXT,
			created_by VARCHAR(36),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- SHU distribution table
		CREATE TABLE shu_distribution (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fiscal_year INTEGER NOT NULL,
			policy_id VARCHAR(36) NOT NULL,
			total_surplus FLOAT NOT NULL,
			reserve_amount FLOAT NOT NULL,
			member_pool_amount FLOAT NOT NULL,
			capital_share_amount FLOAT NOT NULL,
			transaction_share_amount FLOAT NOT NULL,
			management_amount FLOAT NOT NULL,
			staff_amount FLOAT NOT NULL,
			social_fund_amount FLOAT NOT NULL,
			status VARCHAR(20) DEFAULT 'draft' NOT NULL,
			distribution_date DATE,
			approved_by VARCHAR(36),
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(policy_id) REFERENCES shu_policy(id)
		);

		-- SHU allocation table
		CREATE TABLE shu_allocation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			distribution_id VARCHAR(36) NOT NULL,
			member_id VARCHAR(36) NOT NULL,
			capital_share FLOAT NOT NULL,
			transaction_share FLOAT NOT NULL,
			total_amount FLOAT NOT NULL,
			is_paid BOOLEAN DEFAULT FALSE NOT NULL,
			payout_transaction_id VARCHAR(36),
			paid_at DATETIME,
			FOREIGN KEY(distribution_id) REFERENCES shu_distribution(id) ON DELETE CASCADE,
			FOREIGN KEY(member_id) REFERENCES member(id),
			CONSTRAINT unique_distribution_member UNIQUE (distribution_id, member_id)
		);

		-- Fee schedule table
		CREATE TABLE fee_schedule (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			member_id VARCHAR(36) NOT NULL,
			fee_type VARCHAR(30) NOT NULL,
			monthly_amount FLOAT NOT NULL,
			starts_on DATE NOT NULL,
			ends_on DATE,
			is_active BOOLEAN DEFAULT TRUE NOT NULL,
			FOREIGN KEY(member_id) REFERENCES member(id) ON DELETE CASCADE
		);

		-- Fee invoice table
		CREATE TABLE fee_invoice (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			schedule_id VARCHAR(36) NOT NULL,
			member_id VARCHAR(36) NOT NULL,
			period VARCHAR(7) NOT NULL,
			amount FLOAT NOT NULL,
			status VARCHAR(10) DEFAULT 'open' NOT NULL,
			issued_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			paid_at DATETIME,
			FOREIGN KEY(schedule_id) REFERENCES fee_schedule(id) ON DELETE CASCADE,
			FOREIGN KEY(member_id) REFERENCES member(id),
			CONSTRAINT unique_schedule_period UNIQUE (schedule_id, period)
		);

		-- App setting table
		CREATE TABLE app_setting (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			"key" VARCHAR(50) NOT NULL UNIQUE,
			value TEXT NOT NULL,
			encrypted BOOLEAN DEFAULT FALSE NOT NULL,
			updated_at DATETIME
		);

		-- At most one active policy per fiscal year
		CREATE UNIQUE INDEX uq_shu_policy_active_year ON shu_policy(fiscal_year) WHERE is_active = 1;

		-- Indexes for performance
		CREATE INDEX ix_savings_account_member_id ON savings_account(member_id);
		CREATE INDEX ix_savings_transaction_member_id ON savings_transaction(member_id);
		CREATE INDEX ix_savings_transaction_date ON savings_transaction(date);
		CREATE INDEX ix_savings_transaction_type_date ON savings_transaction(type, date);
		CREATE INDEX ix_shu_policy_fiscal_year ON shu_policy(fiscal_year);
		CREATE INDEX ix_shu_distribution_fiscal_year ON shu_distribution(fiscal_year);
		CREATE INDEX ix_shu_allocation_distribution_id ON shu_allocation(distribution_id);
		CREATE INDEX ix_shu_allocation_member_id ON shu_allocation(member_id);
		CREATE INDEX ix_fee_schedule_member_id ON fee_schedule(member_id);
		CREATE INDEX ix_fee_invoice_member_id ON fee_invoice(member_id);
		CREATE INDEX ix_fee_invoice_period ON fee_invoice(period);
		CREATE INDEX ix_fee_invoice_status ON fee_invoice(status);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"shu_allocation",
		"shu_distribution",
		"shu_policy",
		"fee_invoice",
		"fee_schedule",
		"savings_transaction",
		"savings_account",
		"member",
		"app_setting",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
