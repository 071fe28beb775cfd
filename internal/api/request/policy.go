package request

// CreatePolicyRequest is the payload for creating a percentage policy.
type CreatePolicyRequest struct {
	Name                string  `json:"name"`
	FiscalYear          int     `json:"fiscalYear"`
	ReservePct          float64 `json:"reservePct"`
	MemberPoolPct       float64 `json:"memberPoolPct"`
	ManagementPct       float64 `json:"managementPct"`
	StaffPct            float64 `json:"staffPct"`
	SocialFundPct       float64 `json:"socialFundPct"`
	CapitalSharePct     float64 `json:"capitalSharePct"`
	TransactionSharePct float64 `json:"transactionSharePct"`
	Description         string  `json:"description"`
}
