package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/metrics"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// DistributionService handles the SHU distribution lifecycle: creating a
// draft with its organization-level breakdown, computing and persisting
// member allocations, approval, the payout gate and payout marking.
type DistributionService struct {
	db               *sql.DB
	distributionRepo *repository.DistributionRepository
	allocationRepo   *repository.AllocationRepository
	policyRepo       *repository.PolicyRepository
	savingsRepo      *repository.SavingsRepository
	transactionRepo  *repository.TransactionRepository
}

// NewDistributionService creates a new DistributionService with the provided repository dependencies.
func NewDistributionService(
	db *sql.DB,
	distributionRepo *repository.DistributionRepository,
	allocationRepo *repository.AllocationRepository,
	policyRepo *repository.PolicyRepository,
	savingsRepo *repository.SavingsRepository,
	transactionRepo *repository.TransactionRepository,
) *DistributionService {
	return &DistributionService{
		db:               db,
		distributionRepo: distributionRepo,
		allocationRepo:   allocationRepo,
		policyRepo:       policyRepo,
		savingsRepo:      savingsRepo,
		transactionRepo:  transactionRepo,
	}
}

// GetAllDistributions returns all distributions.
func (s *DistributionService) GetAllDistributions() ([]model.Distribution, error) {
	return s.distributionRepo.GetDistributions()
}

// GetDistribution returns a single distribution by ID.
func (s *DistributionService) GetDistribution(distributionID string) (model.Distribution, error) {
	return s.distributionRepo.GetDistributionOnID(distributionID)
}

// GetAllocations returns a distribution's member allocations, largest first.
func (s *DistributionService) GetAllocations(distributionID string) ([]model.AllocationResponse, error) {
	if _, err := s.distributionRepo.GetDistributionOnID(distributionID); err != nil {
		return nil, err
	}
	return s.allocationRepo.GetAllocationsOnDistributionID(distributionID)
}

// CreateDistribution computes the organization-level breakdown for the given
// surplus and policy and persists it as a draft distribution. When policyID
// is empty the fiscal year's active policy is used. The policy's percentages
// are snapshotted into the computed amounts, so a later recompute never
// re-reads the policy row.
func (s *DistributionService) CreateDistribution(fiscalYear int, totalSurplus float64, policyID, notes, actorID string) (*model.Distribution, error) {
	var policy model.Policy
	var err error

	if policyID == "" {
		policy, err = s.policyRepo.GetActivePolicyOnYear(fiscalYear)
	} else {
		policy, err = s.policyRepo.GetPolicyOnID(policyID)
	}
	if err != nil {
		return nil, err
	}

	breakdown, err := ComputeOrganizationBreakdown(fiscalYear, totalSurplus, policy)
	if err != nil {
		return nil, err
	}

	distribution := &model.Distribution{
		ID:                     uuid.New().String(),
		FiscalYear:             fiscalYear,
		PolicyID:               policy.ID,
		TotalSurplus:           totalSurplus,
		ReserveAmount:          breakdown.ReserveAmount,
		MemberPoolAmount:       breakdown.MemberPoolAmount,
		CapitalShareAmount:     breakdown.CapitalShareAmount,
		TransactionShareAmount: breakdown.TransactionShareAmount,
		ManagementAmount:       breakdown.ManagementAmount,
		StaffAmount:            breakdown.StaffAmount,
		SocialFundAmount:       breakdown.SocialFundAmount,
		Status:                 model.DistributionDraft,
		Notes:                  notes,
		CreatedAt:              time.Now().UTC(),
	}

	if err := s.distributionRepo.InsertDistribution(distribution); err != nil {
		return nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	slog.Info("distribution created",
		"distribution_id", distribution.ID,
		"fiscal_year", fiscalYear,
		"policy_id", policy.ID,
		"actor_id", actorID,
		"total_surplus", totalSurplus,
		"reserve_amount", distribution.ReserveAmount,
		"member_pool_amount", distribution.MemberPoolAmount,
		"capital_share_amount", distribution.CapitalShareAmount,
		"transaction_share_amount", distribution.TransactionShareAmount,
		"management_amount", distribution.ManagementAmount,
		"staff_amount", distribution.StaffAmount,
		"social_fund_amount", distribution.SocialFundAmount,
	)

	return distribution, nil
}

// ComputeMemberAllocations computes the per-member allocation drafts for a
// distribution from persisted savings and deposit data. It does not persist
// anything; CalculateAllocations drives the compute-and-replace cycle.
//
// Hard stops: zero aggregate savings or zero aggregate fiscal-year deposits
// abort the whole computation with a data error.
func (s *DistributionService) ComputeMemberAllocations(ctx context.Context, d model.Distribution) ([]model.AllocationDraft, error) {
	var (
		totalSavings  float64
		totalDeposits float64
		balances      []model.MemberBalance
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalSavings, err = s.savingsRepo.GetTotalSavings()
		return err
	})
	g.Go(func() (err error) {
		totalDeposits, err = s.transactionRepo.GetTotalDeposits(d.FiscalYear)
		return err
	})
	g.Go(func() (err error) {
		balances, err = s.savingsRepo.GetMemberBalances(d.FiscalYear)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if totalSavings == 0 {
		return nil, apperrors.ErrNoSavingsData
	}
	if totalDeposits == 0 {
		return nil, apperrors.ErrNoTransactionData
	}

	slog.Debug("computing member allocations",
		"distribution_id", d.ID,
		"fiscal_year", d.FiscalYear,
		"members", len(balances),
		"total_savings", totalSavings,
		"total_deposits", totalDeposits,
	)

	return computeAllocationDrafts(d, balances, totalSavings, totalDeposits), nil
}

// CalculateAllocations recomputes and persists the full allocation set for a
// distribution. Existing allocations are deleted and regenerated in a single
// database transaction; the operation refuses to run once any allocation has
// been paid, because the replace would discard payout state.
func (s *DistributionService) CalculateAllocations(ctx context.Context, distributionID, actorID string) ([]model.AllocationResponse, error) {
	distribution, err := s.distributionRepo.GetDistributionOnID(distributionID)
	if err != nil {
		return nil, err
	}

	drafts, err := s.ComputeMemberAllocations(ctx, distribution)
	if err != nil {
		return nil, err
	}

	if err := s.saveAllocations(ctx, distribution.ID, drafts); err != nil {
		return nil, err
	}

	metrics.DistributionCalculations.Inc()

	slog.Info("member allocations calculated",
		"distribution_id", distribution.ID,
		"fiscal_year", distribution.FiscalYear,
		"actor_id", actorID,
		"allocations", len(drafts),
	)

	return s.allocationRepo.GetAllocationsOnDistributionID(distribution.ID)
}

// saveAllocations replaces a distribution's allocation rows with the drafts
// as a single atomic transaction. Either all prior rows are removed and all
// new rows inserted, or neither happens.
func (s *DistributionService) saveAllocations(ctx context.Context, distributionID string, drafts []model.AllocationDraft) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	txRepo := s.allocationRepo.WithTx(tx)

	// Recompute must not destroy payout state recorded on existing rows.
	_, paid, _, _, err := txRepo.CountAllocations(distributionID)
	if err != nil {
		return err
	}
	if paid > 0 {
		return apperrors.ErrAllocationsAlreadyPaid
	}

	rows := make([]model.Allocation, len(drafts))
	for i, draft := range drafts {
		rows[i] = model.Allocation{
			ID:               uuid.New().String(),
			DistributionID:   distributionID,
			MemberID:         draft.MemberID,
			CapitalShare:     draft.CapitalShare,
			TransactionShare: draft.TransactionShare,
			TotalAmount:      draft.TotalAmount,
		}
	}

	if err := txRepo.ReplaceAllocations(ctx, distributionID, rows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ApproveDistribution moves a draft distribution to approved, recording the
// approving actor.
func (s *DistributionService) ApproveDistribution(ctx context.Context, distributionID, actorID string) (model.Distribution, error) {
	distribution, err := s.distributionRepo.GetDistributionOnID(distributionID)
	if err != nil {
		return model.Distribution{}, err
	}

	if distribution.Status != model.DistributionDraft {
		return model.Distribution{}, apperrors.ErrDistributionAlreadyApproved
	}

	if err := s.distributionRepo.UpdateStatus(ctx, distributionID, model.DistributionApproved, actorID); err != nil {
		return model.Distribution{}, err
	}

	slog.Info("distribution approved",
		"distribution_id", distributionID,
		"fiscal_year", distribution.FiscalYear,
		"actor_id", actorID,
	)

	return s.distributionRepo.GetDistributionOnID(distributionID)
}

// ValidateForPayout checks whether a distribution is eligible to disburse
// funds: it must be approved, must have allocations, and at least one
// allocation must be unpaid. Partially paid distributions also pass the
// status check so an interrupted payout run can finish disbursing the
// remaining allocations. Read-only; it does not disburse anything.
func (s *DistributionService) ValidateForPayout(distributionID string) (model.EligibilityResult, error) {
	distribution, err := s.distributionRepo.GetDistributionOnID(distributionID)
	if err != nil {
		return model.EligibilityResult{}, err
	}

	if distribution.Status != model.DistributionApproved &&
		distribution.Status != model.DistributionPartiallyPaid {
		return model.EligibilityResult{
			Eligible: false,
			Reason:   fmt.Sprintf("distribution must be approved before payout (current status: %s)", distribution.Status),
		}, nil
	}

	total, paid, _, unpaidAmount, err := s.allocationRepo.CountAllocations(distributionID)
	if err != nil {
		return model.EligibilityResult{}, err
	}

	if total == 0 {
		return model.EligibilityResult{
			Eligible: false,
			Reason:   "calculate allocations first",
		}, nil
	}

	unpaidCount := total - paid
	if unpaidCount == 0 {
		return model.EligibilityResult{
			Eligible: false,
			Reason:   "all allocations already paid out",
		}, nil
	}

	return model.EligibilityResult{
		Eligible:     true,
		UnpaidCount:  unpaidCount,
		UnpaidAmount: round(unpaidAmount),
	}, nil
}

// PayoutDistribution marks every unpaid allocation of an eligible
// distribution as paid under a single payout batch reference, then rolls the
// distribution status forward. The whole operation runs in one transaction.
func (s *DistributionService) PayoutDistribution(ctx context.Context, distributionID, actorID string) (model.DistributionSummary, error) {
	eligibility, err := s.ValidateForPayout(distributionID)
	if err != nil {
		return model.DistributionSummary{}, err
	}
	if !eligibility.Eligible {
		return model.DistributionSummary{}, payoutStateError(eligibility.Reason)
	}

	payoutRef := uuid.New().String()
	paidAt := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.DistributionSummary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	marked, err := s.allocationRepo.WithTx(tx).MarkUnpaidAllocationsPaid(ctx, distributionID, payoutRef, paidAt)
	if err != nil {
		return model.DistributionSummary{}, err
	}

	total, paid, _, _, err := s.allocationRepo.WithTx(tx).CountAllocations(distributionID)
	if err != nil {
		return model.DistributionSummary{}, err
	}

	status := model.DistributionPartiallyPaid
	if paid == total {
		status = model.DistributionPaid
	}

	if err := s.distributionRepo.WithTx(tx).UpdateStatus(ctx, distributionID, status, ""); err != nil {
		return model.DistributionSummary{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.DistributionSummary{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("distribution paid out",
		"distribution_id", distributionID,
		"actor_id", actorID,
		"payout_ref", payoutRef,
		"allocations_marked", marked,
		"status", status,
	)

	return s.GetDistributionSummary(distributionID)
}

// GetDistributionSummary returns the payment progress of a distribution.
func (s *DistributionService) GetDistributionSummary(distributionID string) (model.DistributionSummary, error) {
	distribution, err := s.distributionRepo.GetDistributionOnID(distributionID)
	if err != nil {
		return model.DistributionSummary{}, err
	}

	total, paid, paidAmount, unpaidAmount, err := s.allocationRepo.CountAllocations(distributionID)
	if err != nil {
		return model.DistributionSummary{}, err
	}

	progress := 0.0
	if total > 0 {
		progress = round(float64(paid) / float64(total) * 100)
	}

	return model.DistributionSummary{
		ID:                 distribution.ID,
		FiscalYear:         distribution.FiscalYear,
		Status:             distribution.Status,
		TotalSurplus:       distribution.TotalSurplus,
		MemberPoolAmount:   distribution.MemberPoolAmount,
		MemberCount:        total,
		PaidCount:          paid,
		PaidAmount:         round(paidAmount),
		UnpaidAmount:       round(unpaidAmount),
		PaymentProgressPct: progress,
	}, nil
}

// payoutStateError maps a gate reason back onto the matching sentinel error.
func payoutStateError(reason string) error {
	switch reason {
	case "calculate allocations first":
		return apperrors.ErrNoAllocations
	case "all allocations already paid out":
		return apperrors.ErrAllAllocationsPaid
	default:
		return apperrors.ErrDistributionNotApproved
	}
}
