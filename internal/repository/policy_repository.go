package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// PolicyRepository provides data access methods for the shu_policy table.
type PolicyRepository struct {
	db *sql.DB
}

// NewPolicyRepository creates a new PolicyRepository with the provided database connection.
func NewPolicyRepository(db *sql.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const policyColumns = `
    id, name, fiscal_year, is_active,
    reserve_pct, member_pool_pct, management_pct, staff_pct, social_fund_pct,
    capital_share_pct, transaction_share_pct,
    description, created_by, created_at
`

func scanPolicy(row interface{ Scan(dest ...any) error }) (model.Policy, error) {
	var p model.Policy
	var description, createdBy sql.NullString

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.FiscalYear,
		&p.IsActive,
		&p.ReservePct,
		&p.MemberPoolPct,
		&p.ManagementPct,
		&p.StaffPct,
		&p.SocialFundPct,
		&p.CapitalSharePct,
		&p.TransactionSharePct,
		&description,
		&createdBy,
		&p.CreatedAt,
	)
	if err != nil {
		return model.Policy{}, err
	}

	p.Description = description.String
	p.CreatedBy = createdBy.String
	return p, nil
}

// GetPolicies retrieves policies, optionally filtered by fiscal year.
// Returns an empty slice if no policies match.
func (r *PolicyRepository) GetPolicies(fiscalYear int) ([]model.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM shu_policy WHERE 1=1`
	var args []any

	if fiscalYear != 0 {
		query += " AND fiscal_year = ?"
		args = append(args, fiscalYear)
	}

	query += " ORDER BY fiscal_year DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shu_policy table: %w", err)
	}
	defer rows.Close()

	policies := []model.Policy{}

	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shu_policy table results: %w", err)
		}
		policies = append(policies, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shu_policy table: %w", err)
	}

	return policies, nil
}

// GetPolicyOnID retrieves a single policy by its ID.
func (r *PolicyRepository) GetPolicyOnID(policyID string) (model.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM shu_policy WHERE id = ?`

	p, err := scanPolicy(r.db.QueryRow(query, policyID))
	if err == sql.ErrNoRows {
		return model.Policy{}, apperrors.ErrPolicyNotFound
	}
	if err != nil {
		return model.Policy{}, fmt.Errorf("failed to query policy: %w", err)
	}

	return p, nil
}

// GetActivePolicyOnYear retrieves the active policy for a fiscal year.
func (r *PolicyRepository) GetActivePolicyOnYear(fiscalYear int) (model.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM shu_policy WHERE fiscal_year = ? AND is_active = 1`

	p, err := scanPolicy(r.db.QueryRow(query, fiscalYear))
	if err == sql.ErrNoRows {
		return model.Policy{}, apperrors.ErrPolicyNotFound
	}
	if err != nil {
		return model.Policy{}, fmt.Errorf("failed to query active policy: %w", err)
	}

	return p, nil
}

// InsertPolicy inserts a new policy row.
func (r *PolicyRepository) InsertPolicy(p *model.Policy) error {
	query := `
          INSERT INTO shu_policy (
              id, name, fiscal_year, is_active,
              reserve_pct, member_pool_pct, management_pct, staff_pct, social_fund_pct,
              capital_share_pct, transaction_share_pct,
              description, created_by, created_at
          )
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query,
		p.ID, p.Name, p.FiscalYear, p.IsActive,
		p.ReservePct, p.MemberPoolPct, p.ManagementPct, p.StaffPct, p.SocialFundPct,
		p.CapitalSharePct, p.TransactionSharePct,
		p.Description, p.CreatedBy, formatDateTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert policy: %w", err)
	}

	return nil
}

// ActivatePolicy marks the given policy active and deactivates any other
// policy for the same fiscal year inside a single database transaction.
// The partial unique index on (fiscal_year) WHERE is_active backs this up.
func (r *PolicyRepository) ActivatePolicy(ctx context.Context, policyID string, fiscalYear int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE shu_policy SET is_active = 0 WHERE fiscal_year = ? AND is_active = 1`, fiscalYear); err != nil {
		return fmt.Errorf("failed to deactivate policies: %w", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE shu_policy SET is_active = 1 WHERE id = ?`, policyID)
	if err != nil {
		return fmt.Errorf("failed to activate policy: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPolicyNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
