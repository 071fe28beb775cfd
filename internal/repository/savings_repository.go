package repository

import (
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// SavingsRepository provides data access methods for the savings_account table
// and the aggregate queries consumed by the allocation engine.
type SavingsRepository struct {
	db *sql.DB
}

// NewSavingsRepository creates a new SavingsRepository with the provided database connection.
func NewSavingsRepository(db *sql.DB) *SavingsRepository {
	return &SavingsRepository{db: db}
}

// GetAccountsOnMemberID retrieves all savings accounts held by a member.
// Returns an empty slice if the member has no accounts.
func (r *SavingsRepository) GetAccountsOnMemberID(memberID string) ([]model.SavingsAccount, error) {
	query := `
          SELECT id, member_id, account_number, balance, opened_at
          FROM savings_account
          WHERE member_id = ?
          ORDER BY account_number
      `

	rows, err := r.db.Query(query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings_account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.SavingsAccount{}

	for rows.Next() {
		var a model.SavingsAccount

		err := rows.Scan(
			&a.ID,
			&a.MemberID,
			&a.AccountNumber,
			&a.Balance,
			&a.OpenedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings_account table results: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings_account table: %w", err)
	}

	return accounts, nil
}

// InsertAccount inserts a new savings account row.
func (r *SavingsRepository) InsertAccount(a *model.SavingsAccount) error {
	query := `
          INSERT INTO savings_account (id, member_id, account_number, balance, opened_at)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query, a.ID, a.MemberID, a.AccountNumber, a.Balance, formatDateTime(a.OpenedAt))
	if err != nil {
		return fmt.Errorf("failed to insert savings account: %w", err)
	}

	return nil
}

// GetTotalSavings returns the aggregate savings balance across all members.
func (r *SavingsRepository) GetTotalSavings() (float64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM savings_account`

	var total float64
	if err := r.db.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to query total savings: %w", err)
	}

	return total, nil
}

// GetMemberBalances returns, for every member holding at least one savings
// account, the member's aggregate savings balance and total deposit amount
// for the given fiscal year. Members without deposits in the year appear
// with a zero deposit total.
func (r *SavingsRepository) GetMemberBalances(fiscalYear int) ([]model.MemberBalance, error) {
	query := `
          SELECT
              m.id, m.member_number, m.name,
              COALESCE(SUM(sa.balance), 0),
              COALESCE((
                  SELECT SUM(st.amount)
                  FROM savings_transaction st
                  WHERE st.member_id = m.id
                    AND st.type = 'deposit'
                    AND strftime('%Y', st.date) = ?
              ), 0)
          FROM member m
          JOIN savings_account sa ON sa.member_id = m.id
          GROUP BY m.id, m.member_number, m.name
          ORDER BY m.member_number
      `

	rows, err := r.db.Query(query, fmt.Sprintf("%04d", fiscalYear))
	if err != nil {
		return nil, fmt.Errorf("failed to query member balances: %w", err)
	}
	defer rows.Close()

	balances := []model.MemberBalance{}

	for rows.Next() {
		var b model.MemberBalance

		err := rows.Scan(
			&b.MemberID,
			&b.MemberNumber,
			&b.Name,
			&b.SavingsTotal,
			&b.DepositsTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member balance results: %w", err)
		}

		balances = append(balances, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member balances: %w", err)
	}

	return balances, nil
}
