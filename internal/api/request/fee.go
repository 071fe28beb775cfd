package request

// CreateFeeScheduleRequest is the payload for registering a recurring
// monthly estate fee.
type CreateFeeScheduleRequest struct {
	MemberID      string  `json:"memberId"`
	FeeType       string  `json:"feeType"`
	MonthlyAmount float64 `json:"monthlyAmount"`
	StartsOn      string  `json:"startsOn"`
	EndsOn        *string `json:"endsOn,omitempty"`
}
