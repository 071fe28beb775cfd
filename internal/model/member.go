package model

import "time"

// Member represents a cooperative member from the database
type Member struct {
	ID           string    `json:"id"`
	MemberNumber string    `json:"memberNumber"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	JoinDate     time.Time `json:"joinDate"`
	IsActive     bool      `json:"isActive"`
}

// MemberBalance pairs a member with aggregate savings and fiscal-year
// deposit figures. Used by the allocation engine.
type MemberBalance struct {
	MemberID      string
	MemberNumber  string
	Name          string
	SavingsTotal  float64
	DepositsTotal float64
}
