package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/metrics"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// FeeService handles estate-fee schedules and monthly invoice generation.
type FeeService struct {
	feeRepo    *repository.FeeRepository
	memberRepo *repository.MemberRepository
}

// NewFeeService creates a new FeeService with the provided repository dependencies.
func NewFeeService(
	feeRepo *repository.FeeRepository,
	memberRepo *repository.MemberRepository,
) *FeeService {
	return &FeeService{
		feeRepo:    feeRepo,
		memberRepo: memberRepo,
	}
}

// GetSchedules returns fee schedules, optionally restricted to active ones.
func (s *FeeService) GetSchedules(activeOnly bool) ([]model.FeeSchedule, error) {
	return s.feeRepo.GetSchedules(activeOnly)
}

// CreateSchedule registers a recurring monthly fee for a member.
func (s *FeeService) CreateSchedule(memberID, feeType string, monthlyAmount float64, startsOn time.Time, endsOn *time.Time) (*model.FeeSchedule, error) {
	if _, err := s.memberRepo.GetMemberOnID(memberID); err != nil {
		return nil, err
	}

	schedule := &model.FeeSchedule{
		ID:            uuid.New().String(),
		MemberID:      memberID,
		FeeType:       feeType,
		MonthlyAmount: monthlyAmount,
		StartsOn:      startsOn,
		EndsOn:        endsOn,
		IsActive:      true,
	}

	if err := s.feeRepo.InsertSchedule(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetInvoices returns fee invoices filtered by member and status.
func (s *FeeService) GetInvoices(memberID, status string) ([]model.FeeInvoice, error) {
	return s.feeRepo.GetInvoices(memberID, status)
}

// PayInvoice settles an open invoice.
func (s *FeeService) PayInvoice(invoiceID string) (model.FeeInvoice, error) {
	if err := s.feeRepo.MarkInvoicePaid(invoiceID); err != nil {
		return model.FeeInvoice{}, err
	}
	return s.feeRepo.GetInvoiceOnID(invoiceID)
}

// GenerateInvoices creates one invoice per active schedule for the given
// period (YYYY-MM). The (schedule, period) uniqueness makes repeat runs
// idempotent: schedules already invoiced for the period are skipped.
// Schedules that have not started, or that ended before the period, are
// excluded. Returns the number of invoices created.
func (s *FeeService) GenerateInvoices(period string) (int, error) {
	periodStart, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, fmt.Errorf("invalid period %q: %w", period, err)
	}

	schedules, err := s.feeRepo.GetSchedules(true)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, schedule := range schedules {
		if schedule.StartsOn.After(periodStart.AddDate(0, 1, -1)) {
			continue
		}
		if schedule.EndsOn != nil && schedule.EndsOn.Before(periodStart) {
			continue
		}

		invoice := &model.FeeInvoice{
			ID:         uuid.New().String(),
			ScheduleID: schedule.ID,
			MemberID:   schedule.MemberID,
			Period:     period,
			Amount:     schedule.MonthlyAmount,
			Status:     model.InvoiceOpen,
			IssuedAt:   time.Now().UTC(),
		}

		inserted, err := s.feeRepo.InsertInvoiceIfAbsent(invoice)
		if err != nil {
			return created, err
		}
		if inserted {
			created++
			metrics.FeeInvoicesGenerated.Inc()
		}
	}

	slog.Info("fee invoices generated",
		"period", period,
		"schedules", len(schedules),
		"created", created,
	)

	return created, nil
}
