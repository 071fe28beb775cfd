package service

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// PercentageTolerance is the allowed drift when checking that a policy's
// percentage levels sum to 100.
const PercentageTolerance = 0.01

// MinimumReservePct is the statutory floor for the reserve allocation.
const MinimumReservePct = 30.0

// ValidatePolicy reports whether a policy's percentages are internally
// consistent: the five level-1 percentages sum to 100, the two level-2
// percentages sum to 100 (both within PercentageTolerance), and the reserve
// percentage meets the statutory floor. Pure predicate, no side effects.
func ValidatePolicy(p model.Policy) bool {
	level1 := p.ReservePct + p.MemberPoolPct + p.ManagementPct + p.StaffPct + p.SocialFundPct
	if math.Abs(level1-100) > PercentageTolerance {
		return false
	}

	level2 := p.CapitalSharePct + p.TransactionSharePct
	if math.Abs(level2-100) > PercentageTolerance {
		return false
	}

	return p.ReservePct >= MinimumReservePct
}

// ComputeOrganizationBreakdown partitions a total surplus across the
// organization-level pools defined by the policy. The five level-1 amounts
// are fractions of the total surplus; the capital and transaction shares are
// fractions of the member-pool amount. Every amount is rounded half-up to
// two decimals independently.
//
// Pure function: the caller persists the result onto a distribution record.
func ComputeOrganizationBreakdown(fiscalYear int, totalSurplus float64, p model.Policy) (model.Breakdown, error) {
	if totalSurplus < 0 {
		return model.Breakdown{}, apperrors.ErrNegativeAmount
	}
	if !ValidatePolicy(p) {
		return model.Breakdown{}, apperrors.ErrInvalidPolicyPercentages
	}

	surplus := decimal.NewFromFloat(totalSurplus)
	memberPool := pctOf(surplus, p.MemberPoolPct)

	return model.Breakdown{
		FiscalYear:             fiscalYear,
		TotalSurplus:           totalSurplus,
		ReserveAmount:          roundMoney(pctOf(surplus, p.ReservePct)),
		MemberPoolAmount:       roundMoney(memberPool),
		CapitalShareAmount:     roundMoney(pctOf(memberPool.Round(2), p.CapitalSharePct)),
		TransactionShareAmount: roundMoney(pctOf(memberPool.Round(2), p.TransactionSharePct)),
		ManagementAmount:       roundMoney(pctOf(surplus, p.ManagementPct)),
		StaffAmount:            roundMoney(pctOf(surplus, p.StaffPct)),
		SocialFundAmount:       roundMoney(pctOf(surplus, p.SocialFundPct)),
		Percentages:            p,
	}, nil
}

// pctOf returns base * pct / 100 without rounding.
func pctOf(base decimal.Decimal, pct float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
}

// roundMoney rounds a decimal amount half-up to two places and converts it
// back to float64 for persistence and API responses.
func roundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// computeAllocationDrafts sub-allocates a distribution's capital and
// transaction share amounts across members proportionally to their savings
// balance and fiscal-year deposit activity.
//
// Each member's capital and transaction shares are rounded to two decimals
// independently before summing; the resulting per-member drift against the
// organization-level pool totals is accepted, because downstream reports
// rely on the per-line rounded figures. Members with a zero or negative
// total are excluded from the output.
func computeAllocationDrafts(d model.Distribution, balances []model.MemberBalance, totalSavings, totalDeposits float64) []model.AllocationDraft {
	capitalPool := decimal.NewFromFloat(d.CapitalShareAmount)
	transactionPool := decimal.NewFromFloat(d.TransactionShareAmount)
	savingsTotal := decimal.NewFromFloat(totalSavings)
	depositsTotal := decimal.NewFromFloat(totalDeposits)

	drafts := []model.AllocationDraft{}

	for _, b := range balances {
		capitalShare := decimal.NewFromFloat(b.SavingsTotal).
			Div(savingsTotal).
			Mul(capitalPool).
			Round(2)

		transactionShare := decimal.NewFromFloat(b.DepositsTotal).
			Div(depositsTotal).
			Mul(transactionPool).
			Round(2)

		total := capitalShare.Add(transactionShare)
		if total.Sign() <= 0 {
			continue
		}

		drafts = append(drafts, model.AllocationDraft{
			MemberID:         b.MemberID,
			CapitalShare:     capitalShare.InexactFloat64(),
			TransactionShare: transactionShare.InexactFloat64(),
			TotalAmount:      total.InexactFloat64(),
		})
	}

	// Largest allocation first; member id keeps the order deterministic.
	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].TotalAmount != drafts[j].TotalAmount {
			return drafts[i].TotalAmount > drafts[j].TotalAmount
		}
		return drafts[i].MemberID < drafts[j].MemberID
	})

	return drafts
}
