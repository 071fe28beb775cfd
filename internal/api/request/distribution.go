package request

// CreateDistributionRequest is the payload for creating a draft distribution.
type CreateDistributionRequest struct {
	FiscalYear   int     `json:"fiscalYear"`
	TotalSurplus float64 `json:"totalSurplus"`
	PolicyID     string  `json:"policyId"`
	Notes        string  `json:"notes"`
}
