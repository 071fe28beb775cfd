package model

import "time"

// Policy represents a named, versioned SHU percentage configuration.
//
// The five level-1 percentages split the total surplus; the two level-2
// percentages split the member pool. Validation rules live in the
// validation package.
type Policy struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	FiscalYear          int       `json:"fiscalYear"`
	IsActive            bool      `json:"isActive"`
	ReservePct          float64   `json:"reservePct"`
	MemberPoolPct       float64   `json:"memberPoolPct"`
	ManagementPct       float64   `json:"managementPct"`
	StaffPct            float64   `json:"staffPct"`
	SocialFundPct       float64   `json:"socialFundPct"`
	CapitalSharePct     float64   `json:"capitalSharePct"`
	TransactionSharePct float64   `json:"transactionSharePct"`
	Description         string    `json:"description"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt,omitempty"`
}
