package model

import "time"

// Transaction types for savings transactions.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// SavingsTransaction represents a deposit or withdrawal against a savings account.
// Used internally for calculations and data processing.
type SavingsTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	MemberID    string    `json:"memberId"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a savings transaction with enriched data for API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	MemberID    string    `json:"memberId"`
	MemberName  string    `json:"memberName"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}
