package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// DistributionRepository provides data access methods for the shu_distribution table.
type DistributionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewDistributionRepository creates a new DistributionRepository with the provided database connection.
func NewDistributionRepository(db *sql.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

// WithTx returns a new DistributionRepository scoped to the provided transaction.
func (r *DistributionRepository) WithTx(tx *sql.Tx) *DistributionRepository {
	return &DistributionRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *DistributionRepository) getQuerier() interface {
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

const distributionColumns = `
    id, fiscal_year, policy_id, total_surplus,
    reserve_amount, member_pool_amount, capital_share_amount, transaction_share_amount,
    management_amount, staff_amount, social_fund_amount,
    status, distribution_date, approved_by, notes, created_at
`

func scanDistribution(row interface{ Scan(dest ...any) error }) (model.Distribution, error) {
	var d model.Distribution
	var approvedBy, notes sql.NullString

	err := row.Scan(
		&d.ID,
		&d.FiscalYear,
		&d.PolicyID,
		&d.TotalSurplus,
		&d.ReserveAmount,
		&d.MemberPoolAmount,
		&d.CapitalShareAmount,
		&d.TransactionShareAmount,
		&d.ManagementAmount,
		&d.StaffAmount,
		&d.SocialFundAmount,
		&d.Status,
		&d.DistributionDate,
		&approvedBy,
		&notes,
		&d.CreatedAt,
	)
	if err != nil {
		return model.Distribution{}, err
	}

	d.ApprovedBy = approvedBy.String
	d.Notes = notes.String
	return d, nil
}

// GetDistributions retrieves all distributions ordered by fiscal year descending.
func (r *DistributionRepository) GetDistributions() ([]model.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM shu_distribution ORDER BY fiscal_year DESC, created_at DESC`

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shu_distribution table: %w", err)
	}
	defer rows.Close()

	distributions := []model.Distribution{}

	for rows.Next() {
		d, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shu_distribution table results: %w", err)
		}
		distributions = append(distributions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shu_distribution table: %w", err)
	}

	return distributions, nil
}

// GetDistributionOnID retrieves a single distribution by its ID.
func (r *DistributionRepository) GetDistributionOnID(distributionID string) (model.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM shu_distribution WHERE id = ?`

	d, err := scanDistribution(r.getQuerier().QueryRow(query, distributionID))
	if err == sql.ErrNoRows {
		return model.Distribution{}, apperrors.ErrDistributionNotFound
	}
	if err != nil {
		return model.Distribution{}, fmt.Errorf("failed to query distribution: %w", err)
	}

	return d, nil
}

// InsertDistribution inserts a new distribution row.
func (r *DistributionRepository) InsertDistribution(d *model.Distribution) error {
	query := `
          INSERT INTO shu_distribution (
              id, fiscal_year, policy_id, total_surplus,
              reserve_amount, member_pool_amount, capital_share_amount, transaction_share_amount,
              management_amount, staff_amount, social_fund_amount,
              status, distribution_date, approved_by, notes, created_at
          )
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.getQuerier().Exec(query,
		d.ID, d.FiscalYear, d.PolicyID, d.TotalSurplus,
		d.ReserveAmount, d.MemberPoolAmount, d.CapitalShareAmount, d.TransactionShareAmount,
		d.ManagementAmount, d.StaffAmount, d.SocialFundAmount,
		d.Status, nullableDate(d.DistributionDate), d.ApprovedBy, d.Notes, formatDateTime(d.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert distribution: %w", err)
	}

	return nil
}

// UpdateStatus moves a distribution to the given status. The approvedBy
// reference is recorded when non-empty.
func (r *DistributionRepository) UpdateStatus(ctx context.Context, distributionID, status, approvedBy string) error {
	query := `UPDATE shu_distribution SET status = ?`
	args := []any{status}

	if approvedBy != "" {
		query += ", approved_by = ?"
		args = append(args, approvedBy)
	}

	query += " WHERE id = ?"
	args = append(args, distributionID)

	result, err := r.getQuerier().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update distribution status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDistributionNotFound
	}

	return nil
}
