package service

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the monthly estate-fee invoice job. Invoice generation is
// idempotent, so an overlapping manual run is harmless.
type Scheduler struct {
	cron       *cron.Cron
	feeService *FeeService
}

// NewScheduler creates a Scheduler wired to the fee service.
func NewScheduler(feeService *FeeService) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		feeService: feeService,
	}
}

// Start registers the invoice job (00:05 on the 1st of every month) and
// starts the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("5 0 1 * *", func() {
		period := time.Now().UTC().Format("2006-01")
		if _, err := s.feeService.GenerateInvoices(period); err != nil {
			slog.Error("scheduled fee invoice generation failed", "period", period, "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
