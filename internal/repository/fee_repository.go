package repository

import (
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// FeeRepository provides data access methods for the fee_schedule and
// fee_invoice tables.
type FeeRepository struct {
	db *sql.DB
}

// NewFeeRepository creates a new FeeRepository with the provided database connection.
func NewFeeRepository(db *sql.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// GetSchedules retrieves fee schedules. When activeOnly is true, inactive
// schedules are filtered out.
func (r *FeeRepository) GetSchedules(activeOnly bool) ([]model.FeeSchedule, error) {
	query := `
          SELECT id, member_id, fee_type, monthly_amount, starts_on, ends_on, is_active
          FROM fee_schedule
          WHERE 1=1
      `
	var args []any

	if activeOnly {
		query += " AND is_active = ?"
		args = append(args, 1)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee_schedule table: %w", err)
	}
	defer rows.Close()

	schedules := []model.FeeSchedule{}

	for rows.Next() {
		var s model.FeeSchedule

		err := rows.Scan(
			&s.ID,
			&s.MemberID,
			&s.FeeType,
			&s.MonthlyAmount,
			&s.StartsOn,
			&s.EndsOn,
			&s.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee_schedule table results: %w", err)
		}

		schedules = append(schedules, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee_schedule table: %w", err)
	}

	return schedules, nil
}

// InsertSchedule inserts a new fee schedule row.
func (r *FeeRepository) InsertSchedule(s *model.FeeSchedule) error {
	query := `
          INSERT INTO fee_schedule (id, member_id, fee_type, monthly_amount, starts_on, ends_on, is_active)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query, s.ID, s.MemberID, s.FeeType, s.MonthlyAmount, formatDate(s.StartsOn), nullableDate(s.EndsOn), s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert fee schedule: %w", err)
	}

	return nil
}

// GetInvoices retrieves fee invoices, optionally filtered by member and status.
func (r *FeeRepository) GetInvoices(memberID, status string) ([]model.FeeInvoice, error) {
	query := `
          SELECT id, schedule_id, member_id, period, amount, status, issued_at, paid_at
          FROM fee_invoice
          WHERE 1=1
      `
	var args []any

	if memberID != "" {
		query += " AND member_id = ?"
		args = append(args, memberID)
	}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY period DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee_invoice table: %w", err)
	}
	defer rows.Close()

	invoices := []model.FeeInvoice{}

	for rows.Next() {
		var inv model.FeeInvoice

		err := rows.Scan(
			&inv.ID,
			&inv.ScheduleID,
			&inv.MemberID,
			&inv.Period,
			&inv.Amount,
			&inv.Status,
			&inv.IssuedAt,
			&inv.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee_invoice table results: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee_invoice table: %w", err)
	}

	return invoices, nil
}

// GetInvoiceOnID retrieves a single fee invoice by its ID.
func (r *FeeRepository) GetInvoiceOnID(invoiceID string) (model.FeeInvoice, error) {
	query := `
          SELECT id, schedule_id, member_id, period, amount, status, issued_at, paid_at
          FROM fee_invoice
          WHERE id = ?
      `
	var inv model.FeeInvoice

	err := r.db.QueryRow(query, invoiceID).Scan(
		&inv.ID,
		&inv.ScheduleID,
		&inv.MemberID,
		&inv.Period,
		&inv.Amount,
		&inv.Status,
		&inv.IssuedAt,
		&inv.PaidAt,
	)
	if err == sql.ErrNoRows {
		return model.FeeInvoice{}, apperrors.ErrFeeInvoiceNotFound
	}
	if err != nil {
		return model.FeeInvoice{}, fmt.Errorf("failed to query fee invoice: %w", err)
	}

	return inv, nil
}

// InsertInvoiceIfAbsent inserts an invoice unless one already exists for the
// (schedule, period) pair. Returns true when a row was inserted.
func (r *FeeRepository) InsertInvoiceIfAbsent(inv *model.FeeInvoice) (bool, error) {
	query := `
          INSERT INTO fee_invoice (id, schedule_id, member_id, period, amount, status, issued_at)
          SELECT ?, ?, ?, ?, ?, ?, ?
          WHERE NOT EXISTS (
              SELECT 1 FROM fee_invoice WHERE schedule_id = ? AND period = ?
          )
      `

	result, err := r.db.Exec(query,
		inv.ID, inv.ScheduleID, inv.MemberID, inv.Period, inv.Amount, inv.Status,
		formatDateTime(inv.IssuedAt),
		inv.ScheduleID, inv.Period,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert fee invoice: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// MarkInvoicePaid settles an open invoice. Returns ErrInvoiceAlreadyPaid when
// the invoice was already settled.
func (r *FeeRepository) MarkInvoicePaid(invoiceID string) error {
	query := `
          UPDATE fee_invoice
          SET status = 'paid', paid_at = CURRENT_TIMESTAMP
          WHERE id = ? AND status = 'open'
      `

	result, err := r.db.Exec(query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		if _, err := r.GetInvoiceOnID(invoiceID); err != nil {
			return err
		}
		return apperrors.ErrInvoiceAlreadyPaid
	}

	return nil
}
