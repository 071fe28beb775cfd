package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// TransactionRepository provides data access methods for the savings_transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves transactions, optionally filtered by member and
// fiscal year. Results are enriched with the member name and ordered by date
// descending.
func (r *TransactionRepository) GetTransactions(memberID string, fiscalYear int) ([]model.TransactionResponse, error) {
	query := `
          SELECT st.id, st.account_id, st.member_id, m.name, st.date, st.type, st.amount, st.description
          FROM savings_transaction st
          JOIN member m ON m.id = st.member_id
          WHERE 1=1
      `
	var args []any

	if memberID != "" {
		query += " AND st.member_id = ?"
		args = append(args, memberID)
	}

	if fiscalYear != 0 {
		query += " AND strftime('%Y', st.date) = ?"
		args = append(args, fmt.Sprintf("%04d", fiscalYear))
	}

	query += " ORDER BY st.date DESC, st.created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.TransactionResponse{}

	for rows.Next() {
		var t model.TransactionResponse
		var description sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.AccountID,
			&t.MemberID,
			&t.MemberName,
			&t.Date,
			&t.Type,
			&t.Amount,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings_transaction table results: %w", err)
		}

		t.Description = description.String
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.TransactionResponse, error) {
	query := `
          SELECT st.id, st.account_id, st.member_id, m.name, st.date, st.type, st.amount, st.description
          FROM savings_transaction st
          JOIN member m ON m.id = st.member_id
          WHERE st.id = ?
      `
	var t model.TransactionResponse
	var description sql.NullString

	err := r.db.QueryRow(query, transactionID).Scan(
		&t.ID,
		&t.AccountID,
		&t.MemberID,
		&t.MemberName,
		&t.Date,
		&t.Type,
		&t.Amount,
		&description,
	)
	if err == sql.ErrNoRows {
		return model.TransactionResponse{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.TransactionResponse{}, fmt.Errorf("failed to query transaction: %w", err)
	}

	t.Description = description.String
	return t, nil
}

// InsertTransaction inserts a transaction row and adjusts the owning
// account's balance in the same database transaction. Deposits increase
// the balance, withdrawals decrease it.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.SavingsTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	query := `
          INSERT INTO savings_transaction (id, account_id, member_id, date, type, amount, description, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `

	if _, err := tx.ExecContext(ctx, query,
		t.ID, t.AccountID, t.MemberID, formatDate(t.Date),
		t.Type, t.Amount, t.Description, formatDateTime(t.CreatedAt),
	); err != nil {
		return fmt.Errorf("failed to insert savings transaction: %w", err)
	}

	delta := t.Amount
	if t.Type == model.TransactionWithdrawal {
		delta = -t.Amount
	}

	if _, err := tx.ExecContext(ctx, `UPDATE savings_account SET balance = balance + ? WHERE id = ?`, delta, t.AccountID); err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTotalDeposits returns the aggregate deposit amount for the fiscal year
// across all members.
func (r *TransactionRepository) GetTotalDeposits(fiscalYear int) (float64, error) {
	query := `
          SELECT COALESCE(SUM(amount), 0)
          FROM savings_transaction
          WHERE type = 'deposit' AND strftime('%Y', date) = ?
      `

	var total float64
	if err := r.db.QueryRow(query, fmt.Sprintf("%04d", fiscalYear)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to query total deposits: %w", err)
	}

	return total, nil
}
