package model

import "time"

// Fee invoice statuses.
const (
	InvoiceOpen = "open"
	InvoicePaid = "paid"
)

// FeeSchedule represents a recurring monthly estate fee for a member.
type FeeSchedule struct {
	ID            string     `json:"id"`
	MemberID      string     `json:"memberId"`
	FeeType       string     `json:"feeType"`
	MonthlyAmount float64    `json:"monthlyAmount"`
	StartsOn      time.Time  `json:"startsOn"`
	EndsOn        *time.Time `json:"endsOn,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// FeeInvoice represents one month's estate fee charge generated from a schedule.
// Period is formatted as YYYY-MM; (schedule, period) is unique so generation
// is idempotent.
type FeeInvoice struct {
	ID         string     `json:"id"`
	ScheduleID string     `json:"scheduleId"`
	MemberID   string     `json:"memberId"`
	Period     string     `json:"period"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	IssuedAt   time.Time  `json:"issuedAt"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}
