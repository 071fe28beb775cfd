package model

import "time"

// Allocation represents one member's share of a distribution's member pool.
// The full set of a distribution's allocations is replaced on every recompute.
type Allocation struct {
	ID                  string     `json:"id"`
	DistributionID      string     `json:"distributionId"`
	MemberID            string     `json:"memberId"`
	CapitalShare        float64    `json:"capitalShare"`
	TransactionShare    float64    `json:"transactionShare"`
	TotalAmount         float64    `json:"totalAmount"`
	IsPaid              bool       `json:"isPaid"`
	PayoutTransactionID string     `json:"payoutTransactionId,omitempty"`
	PaidAt              *time.Time `json:"paidAt,omitempty"`
}

// AllocationDraft is an allocation computed by the engine before persistence.
// Drafts carry no identity or payout state; both are assigned on save.
type AllocationDraft struct {
	MemberID         string  `json:"memberId"`
	CapitalShare     float64 `json:"capitalShare"`
	TransactionShare float64 `json:"transactionShare"`
	TotalAmount      float64 `json:"totalAmount"`
}

// AllocationResponse represents an allocation with enriched member data
// for API responses.
type AllocationResponse struct {
	ID                  string     `json:"id"`
	DistributionID      string     `json:"distributionId"`
	MemberID            string     `json:"memberId"`
	MemberNumber        string     `json:"memberNumber"`
	MemberName          string     `json:"memberName"`
	CapitalShare        float64    `json:"capitalShare"`
	TransactionShare    float64    `json:"transactionShare"`
	TotalAmount         float64    `json:"totalAmount"`
	IsPaid              bool       `json:"isPaid"`
	PayoutTransactionID string     `json:"payoutTransactionId,omitempty"`
	PaidAt              *time.Time `json:"paidAt,omitempty"`
}
