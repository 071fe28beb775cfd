package model

import "time"

// SavingsAccount represents a member savings account from the database
type SavingsAccount struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"memberId"`
	AccountNumber string    `json:"accountNumber"`
	Balance       float64   `json:"balance"`
	OpenedAt      time.Time `json:"openedAt"`
}
