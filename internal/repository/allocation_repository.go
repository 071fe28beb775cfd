package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// AllocationRepository provides data access methods for the shu_allocation table.
// Replace and payout operations are expected to run inside a transaction via WithTx.
type AllocationRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewAllocationRepository creates a new AllocationRepository with the provided database connection.
func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// WithTx returns a new AllocationRepository scoped to the provided transaction.
func (r *AllocationRepository) WithTx(tx *sql.Tx) *AllocationRepository {
	return &AllocationRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *AllocationRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetAllocationsOnDistributionID retrieves a distribution's allocations
// enriched with member data, ordered by total amount descending with member
// id as a deterministic tiebreak.
func (r *AllocationRepository) GetAllocationsOnDistributionID(distributionID string) ([]model.AllocationResponse, error) {
	query := `
          SELECT a.id, a.distribution_id, a.member_id, m.member_number, m.name,
                 a.capital_share, a.transaction_share, a.total_amount,
                 a.is_paid, a.payout_transaction_id, a.paid_at
          FROM shu_allocation a
          JOIN member m ON m.id = a.member_id
          WHERE a.distribution_id = ?
          ORDER BY a.total_amount DESC, a.member_id ASC
      `

	rows, err := r.getQuerier().Query(query, distributionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shu_allocation table: %w", err)
	}
	defer rows.Close()

	allocations := []model.AllocationResponse{}

	for rows.Next() {
		var a model.AllocationResponse
		var payoutRef sql.NullString

		err := rows.Scan(
			&a.ID,
			&a.DistributionID,
			&a.MemberID,
			&a.MemberNumber,
			&a.MemberName,
			&a.CapitalShare,
			&a.TransactionShare,
			&a.TotalAmount,
			&a.IsPaid,
			&payoutRef,
			&a.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shu_allocation table results: %w", err)
		}

		a.PayoutTransactionID = payoutRef.String
		allocations = append(allocations, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shu_allocation table: %w", err)
	}

	return allocations, nil
}

// CountAllocations returns total, paid and unpaid allocation counts plus the
// paid and unpaid amounts for a distribution.
func (r *AllocationRepository) CountAllocations(distributionID string) (total, paid int, paidAmount, unpaidAmount float64, err error) {
	query := `
          SELECT
              COUNT(*),
              COALESCE(SUM(CASE WHEN is_paid = 1 THEN 1 ELSE 0 END), 0),
              COALESCE(SUM(CASE WHEN is_paid = 1 THEN total_amount ELSE 0 END), 0),
              COALESCE(SUM(CASE WHEN is_paid = 0 THEN total_amount ELSE 0 END), 0)
          FROM shu_allocation
          WHERE distribution_id = ?
      `

	err = r.getQuerier().QueryRow(query, distributionID).Scan(&total, &paid, &paidAmount, &unpaidAmount)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count allocations: %w", err)
	}

	return total, paid, paidAmount, unpaidAmount, nil
}

// ReplaceAllocations deletes all existing allocation rows owned by the
// distribution and inserts the drafts as fresh unpaid rows. Callers must run
// this inside a transaction (WithTx) so the replace is all-or-nothing.
func (r *AllocationRepository) ReplaceAllocations(ctx context.Context, distributionID string, drafts []model.Allocation) error {
	if _, err := r.getQuerier().ExecContext(ctx, `DELETE FROM shu_allocation WHERE distribution_id = ?`, distributionID); err != nil {
		return fmt.Errorf("failed to delete allocations: %w", err)
	}

	query := `
          INSERT INTO shu_allocation (
              id, distribution_id, member_id,
              capital_share, transaction_share, total_amount,
              is_paid, payout_transaction_id, paid_at
          )
          VALUES (?, ?, ?, ?, ?, ?, 0, NULL, NULL)
      `

	for _, a := range drafts {
		if _, err := r.getQuerier().ExecContext(ctx, query,
			a.ID, distributionID, a.MemberID,
			a.CapitalShare, a.TransactionShare, a.TotalAmount,
		); err != nil {
			return fmt.Errorf("failed to insert allocation for member %s: %w", a.MemberID, err)
		}
	}

	return nil
}

// MarkUnpaidAllocationsPaid stamps every unpaid allocation of a distribution
// with the payout reference and timestamp. Returns the number of rows marked.
func (r *AllocationRepository) MarkUnpaidAllocationsPaid(ctx context.Context, distributionID, payoutRef string, paidAt time.Time) (int64, error) {
	query := `
          UPDATE shu_allocation
          SET is_paid = 1, payout_transaction_id = ?, paid_at = ?
          WHERE distribution_id = ? AND is_paid = 0
      `

	result, err := r.getQuerier().ExecContext(ctx, query, payoutRef, formatDateTime(paidAt), distributionID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark allocations paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
