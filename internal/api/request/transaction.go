package request

// CreateTransactionRequest is the payload for recording a savings deposit
// or withdrawal.
type CreateTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	MemberID    string  `json:"memberId"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
