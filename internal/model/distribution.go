package model

import "time"

// Distribution statuses.
const (
	DistributionDraft         = "draft"
	DistributionApproved      = "approved"
	DistributionPartiallyPaid = "partially_paid"
	DistributionPaid          = "paid"
)

// Distribution represents one fiscal year's SHU computation-and-payout record.
//
// The computed amounts are snapshots derived from (total surplus, policy
// percentages) at creation time; they are never edited independently of a
// recompute.
type Distribution struct {
	ID                     string     `json:"id"`
	FiscalYear             int        `json:"fiscalYear"`
	PolicyID               string     `json:"policyId"`
	TotalSurplus           float64    `json:"totalSurplus"`
	ReserveAmount          float64    `json:"reserveAmount"`
	MemberPoolAmount       float64    `json:"memberPoolAmount"`
	CapitalShareAmount     float64    `json:"capitalShareAmount"`
	TransactionShareAmount float64    `json:"transactionShareAmount"`
	ManagementAmount       float64    `json:"managementAmount"`
	StaffAmount            float64    `json:"staffAmount"`
	SocialFundAmount       float64    `json:"socialFundAmount"`
	Status                 string     `json:"status"`
	DistributionDate       *time.Time `json:"distributionDate,omitempty"`
	ApprovedBy             string     `json:"approvedBy,omitempty"`
	Notes                  string     `json:"notes"`
	CreatedAt              time.Time  `json:"createdAt,omitempty"`
}

// Breakdown carries the organization-level amounts computed from a total
// surplus and a policy, together with the percentages used, for audit and
// display.
type Breakdown struct {
	FiscalYear             int     `json:"fiscalYear"`
	TotalSurplus           float64 `json:"totalSurplus"`
	ReserveAmount          float64 `json:"reserveAmount"`
	MemberPoolAmount       float64 `json:"memberPoolAmount"`
	CapitalShareAmount     float64 `json:"capitalShareAmount"`
	TransactionShareAmount float64 `json:"transactionShareAmount"`
	ManagementAmount       float64 `json:"managementAmount"`
	StaffAmount            float64 `json:"staffAmount"`
	SocialFundAmount       float64 `json:"socialFundAmount"`
	Percentages            Policy  `json:"percentages"`
}

// DistributionSummary represents the payment progress of a distribution.
type DistributionSummary struct {
	ID                 string  `json:"id"`
	FiscalYear         int     `json:"fiscalYear"`
	Status             string  `json:"status"`
	TotalSurplus       float64 `json:"totalSurplus"`
	MemberPoolAmount   float64 `json:"memberPoolAmount"`
	MemberCount        int     `json:"memberCount"`
	PaidCount          int     `json:"paidCount"`
	PaidAmount         float64 `json:"paidAmount"`
	UnpaidAmount       float64 `json:"unpaidAmount"`
	PaymentProgressPct float64 `json:"paymentProgressPct"`
}

// EligibilityResult is the outcome of the payout gate check.
type EligibilityResult struct {
	Eligible     bool    `json:"eligible"`
	Reason       string  `json:"reason,omitempty"`
	UnpaidCount  int     `json:"unpaidCount,omitempty"`
	UnpaidAmount float64 `json:"unpaidAmount,omitempty"`
}
