package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// MemberBuilder provides a fluent interface for creating test members.
//
// Example usage:
//
//	// Simple creation with defaults
//	member := testutil.NewMember().Build(t, db)
//
//	// Customized member
//	member := testutil.NewMember().
//	    WithName("Siti Rahma").
//	    Inactive().
//	    Build(t, db)
type MemberBuilder struct {
	ID           string
	MemberNumber string
	Name         string
	Email        string
	Phone        string
	JoinDate     time.Time
	IsActive     bool
}

// NewMember creates a MemberBuilder with sensible defaults.
func NewMember() *MemberBuilder {
	return &MemberBuilder{
		ID:           MakeID(),
		MemberNumber: MakeMemberNumber("M"),
		Name:         MakeMemberName("Test Member"),
		Email:        "member@example.com",
		Phone:        "+62-811-0000",
		JoinDate:     time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

// WithID sets a custom ID.
func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.ID = id
	return b
}

// WithMemberNumber sets a custom member number.
func (b *MemberBuilder) WithMemberNumber(number string) *MemberBuilder {
	b.MemberNumber = number
	return b
}

// WithName sets a custom name.
func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.Name = name
	return b
}

// WithJoinDate sets a custom join date.
func (b *MemberBuilder) WithJoinDate(joinDate time.Time) *MemberBuilder {
	b.JoinDate = joinDate
	return b
}

// Inactive marks the member as inactive.
func (b *MemberBuilder) Inactive() *MemberBuilder {
	b.IsActive = false
	return b
}

// Build creates the member in the database and returns it.
func (b *MemberBuilder) Build(t *testing.T, db *sql.DB) model.Member {
	t.Helper()

	query := `
		INSERT INTO member (id, member_number, name, email, phone, join_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.MemberNumber, b.Name, b.Email, b.Phone,
		b.JoinDate.Format("2006-01-02"), b.IsActive)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return model.Member{
		ID:           b.ID,
		MemberNumber: b.MemberNumber,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		JoinDate:     b.JoinDate,
		IsActive:     b.IsActive,
	}
}

// SavingsAccountBuilder provides a fluent interface for creating test
// savings accounts.
//
// Example usage:
//
//	account := testutil.NewSavingsAccount(member.ID).
//	    WithBalance(5_000_000).
//	    Build(t, db)
type SavingsAccountBuilder struct {
	ID            string
	MemberID      string
	AccountNumber string
	Balance       float64
	OpenedAt      time.Time
}

// NewSavingsAccount creates a SavingsAccountBuilder for the given member.
func NewSavingsAccount(memberID string) *SavingsAccountBuilder {
	return &SavingsAccountBuilder{
		ID:            MakeID(),
		MemberID:      memberID,
		AccountNumber: MakeAccountNumber("SA"),
		Balance:       0,
		OpenedAt:      time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithBalance sets the account balance.
func (b *SavingsAccountBuilder) WithBalance(balance float64) *SavingsAccountBuilder {
	b.Balance = balance
	return b
}

// WithAccountNumber sets a custom account number.
func (b *SavingsAccountBuilder) WithAccountNumber(number string) *SavingsAccountBuilder {
	b.AccountNumber = number
	return b
}

// Build creates the savings account in the database and returns it.
func (b *SavingsAccountBuilder) Build(t *testing.T, db *sql.DB) model.SavingsAccount {
	t.Helper()

	query := `
		INSERT INTO savings_account (id, member_id, account_number, balance, opened_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.MemberID, b.AccountNumber, b.Balance,
		b.OpenedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		t.Fatalf("Failed to create test savings account: %v", err)
	}

	return model.SavingsAccount{
		ID:            b.ID,
		MemberID:      b.MemberID,
		AccountNumber: b.AccountNumber,
		Balance:       b.Balance,
		OpenedAt:      b.OpenedAt,
	}
}

// TransactionBuilder provides a fluent interface for creating test savings
// transactions. The account balance is not adjusted; set it via the account
// builder when the test needs a consistent balance.
//
// Example usage:
//
//	testutil.NewTransaction(account.ID, member.ID).
//	    Deposit(1_000_000).
//	    OnDate("2024-03-10").
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	AccountID   string
	MemberID    string
	Date        time.Time
	Type        string
	Amount      float64
	Description string
}

// NewTransaction creates a TransactionBuilder with deposit defaults.
func NewTransaction(accountID, memberID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		AccountID: accountID,
		MemberID:  memberID,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:      model.TransactionDeposit,
		Amount:    100_000,
	}
}

// Deposit marks the transaction as a deposit of the given amount.
func (b *TransactionBuilder) Deposit(amount float64) *TransactionBuilder {
	b.Type = model.TransactionDeposit
	b.Amount = amount
	return b
}

// Withdrawal marks the transaction as a withdrawal of the given amount.
func (b *TransactionBuilder) Withdrawal(amount float64) *TransactionBuilder {
	b.Type = model.TransactionWithdrawal
	b.Amount = amount
	return b
}

// OnDate sets the transaction date from a YYYY-MM-DD string.
func (b *TransactionBuilder) OnDate(date string) *TransactionBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: invalid transaction date " + date)
	}
	b.Date = parsed
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.SavingsTransaction {
	t.Helper()

	query := `
		INSERT INTO savings_transaction (id, account_id, member_id, date, type, amount, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AccountID, b.MemberID,
		b.Date.Format("2006-01-02"), b.Type, b.Amount, b.Description)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.SavingsTransaction{
		ID:          b.ID,
		AccountID:   b.AccountID,
		MemberID:    b.MemberID,
		Date:        b.Date,
		Type:        b.Type,
		Amount:      b.Amount,
		Description: b.Description,
	}
}

// PolicyBuilder provides a fluent interface for creating test policies.
// Defaults form a valid percentage set: 30/50/10/5/5 with 60/40 shares.
//
// Example usage:
//
//	policy := testutil.NewPolicy().WithFiscalYear(2024).Active().Build(t, db)
type PolicyBuilder struct {
	ID                  string
	Name                string
	FiscalYear          int
	IsActive            bool
	ReservePct          float64
	MemberPoolPct       float64
	ManagementPct       float64
	StaffPct            float64
	SocialFundPct       float64
	CapitalSharePct     float64
	TransactionSharePct float64
}

// NewPolicy creates a PolicyBuilder with a valid default percentage set.
func NewPolicy() *PolicyBuilder {
	return &PolicyBuilder{
		ID:                  MakeID(),
		Name:                "Policy " + randomAlphanumeric(6),
		FiscalYear:          2024,
		IsActive:            false,
		ReservePct:          30,
		MemberPoolPct:       50,
		ManagementPct:       10,
		StaffPct:            5,
		SocialFundPct:       5,
		CapitalSharePct:     60,
		TransactionSharePct: 40,
	}
}

// WithFiscalYear sets the fiscal year.
func (b *PolicyBuilder) WithFiscalYear(year int) *PolicyBuilder {
	b.FiscalYear = year
	return b
}

// WithPercentages sets the five level-1 percentages.
func (b *PolicyBuilder) WithPercentages(reserve, memberPool, management, staff, socialFund float64) *PolicyBuilder {
	b.ReservePct = reserve
	b.MemberPoolPct = memberPool
	b.ManagementPct = management
	b.StaffPct = staff
	b.SocialFundPct = socialFund
	return b
}

// WithShares sets the two level-2 percentages.
func (b *PolicyBuilder) WithShares(capital, transaction float64) *PolicyBuilder {
	b.CapitalSharePct = capital
	b.TransactionSharePct = transaction
	return b
}

// Active marks the policy as active.
func (b *PolicyBuilder) Active() *PolicyBuilder {
	b.IsActive = true
	return b
}

// Build creates the policy in the database and returns it.
func (b *PolicyBuilder) Build(t *testing.T, db *sql.DB) model.Policy {
	t.Helper()

	query := `
		INSERT INTO shu_policy (
			id, name, fiscal_year, is_active,
			reserve_pct, member_pool_pct, management_pct, staff_pct, social_fund_pct,
			capital_share_pct, transaction_share_pct, description
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.FiscalYear, b.IsActive,
		b.ReservePct, b.MemberPoolPct, b.ManagementPct, b.StaffPct, b.SocialFundPct,
		b.CapitalSharePct, b.TransactionSharePct, "")
	if err != nil {
		t.Fatalf("Failed to create test policy: %v", err)
	}

	return model.Policy{
		ID:                  b.ID,
		Name:                b.Name,
		FiscalYear:          b.FiscalYear,
		IsActive:            b.IsActive,
		ReservePct:          b.ReservePct,
		MemberPoolPct:       b.MemberPoolPct,
		ManagementPct:       b.ManagementPct,
		StaffPct:            b.StaffPct,
		SocialFundPct:       b.SocialFundPct,
		CapitalSharePct:     b.CapitalSharePct,
		TransactionSharePct: b.TransactionSharePct,
	}
}

// DistributionBuilder provides a fluent interface for creating test
// distributions. Defaults match the default policy applied to a surplus of
// 100,000,000.
//
// Example usage:
//
//	distribution := testutil.NewDistribution(policy.ID).
//	    Approved().
//	    Build(t, db)
type DistributionBuilder struct {
	ID                     string
	FiscalYear             int
	PolicyID               string
	TotalSurplus           float64
	ReserveAmount          float64
	MemberPoolAmount       float64
	CapitalShareAmount     float64
	TransactionShareAmount float64
	ManagementAmount       float64
	StaffAmount            float64
	SocialFundAmount       float64
	Status                 string
}

// NewDistribution creates a DistributionBuilder referencing the given policy.
func NewDistribution(policyID string) *DistributionBuilder {
	return &DistributionBuilder{
		ID:                     MakeID(),
		FiscalYear:             2024,
		PolicyID:               policyID,
		TotalSurplus:           100_000_000,
		ReserveAmount:          30_000_000,
		MemberPoolAmount:       50_000_000,
		CapitalShareAmount:     30_000_000,
		TransactionShareAmount: 20_000_000,
		ManagementAmount:       10_000_000,
		StaffAmount:            5_000_000,
		SocialFundAmount:       5_000_000,
		Status:                 model.DistributionDraft,
	}
}

// WithFiscalYear sets the fiscal year.
func (b *DistributionBuilder) WithFiscalYear(year int) *DistributionBuilder {
	b.FiscalYear = year
	return b
}

// WithTotalSurplus sets the total surplus without recomputing the breakdown.
func (b *DistributionBuilder) WithTotalSurplus(surplus float64) *DistributionBuilder {
	b.TotalSurplus = surplus
	return b
}

// WithMemberPool overrides the member pool and its level-2 split.
func (b *DistributionBuilder) WithMemberPool(pool, capital, transaction float64) *DistributionBuilder {
	b.MemberPoolAmount = pool
	b.CapitalShareAmount = capital
	b.TransactionShareAmount = transaction
	return b
}

// WithStatus sets the lifecycle status.
func (b *DistributionBuilder) WithStatus(status string) *DistributionBuilder {
	b.Status = status
	return b
}

// Approved marks the distribution as approved.
func (b *DistributionBuilder) Approved() *DistributionBuilder {
	b.Status = model.DistributionApproved
	return b
}

// Build creates the distribution in the database and returns it.
func (b *DistributionBuilder) Build(t *testing.T, db *sql.DB) model.Distribution {
	t.Helper()

	query := `
		INSERT INTO shu_distribution (
			id, fiscal_year, policy_id, total_surplus,
			reserve_amount, member_pool_amount, capital_share_amount, transaction_share_amount,
			management_amount, staff_amount, social_fund_amount, status, notes
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.FiscalYear, b.PolicyID, b.TotalSurplus,
		b.ReserveAmount, b.MemberPoolAmount, b.CapitalShareAmount, b.TransactionShareAmount,
		b.ManagementAmount, b.StaffAmount, b.SocialFundAmount, b.Status, "")
	if err != nil {
		t.Fatalf("Failed to create test distribution: %v", err)
	}

	return model.Distribution{
		ID:                     b.ID,
		FiscalYear:             b.FiscalYear,
		PolicyID:               b.PolicyID,
		TotalSurplus:           b.TotalSurplus,
		ReserveAmount:          b.ReserveAmount,
		MemberPoolAmount:       b.MemberPoolAmount,
		CapitalShareAmount:     b.CapitalShareAmount,
		TransactionShareAmount: b.TransactionShareAmount,
		ManagementAmount:       b.ManagementAmount,
		StaffAmount:            b.StaffAmount,
		SocialFundAmount:       b.SocialFundAmount,
		Status:                 b.Status,
	}
}

// AllocationBuilder provides a fluent interface for creating test allocations.
//
// Example usage:
//
//	testutil.NewAllocation(distribution.ID, member.ID).
//	    WithAmounts(19_800_000, 13_200_000).
//	    Paid().
//	    Build(t, db)
type AllocationBuilder struct {
	ID                  string
	DistributionID      string
	MemberID            string
	CapitalShare        float64
	TransactionShare    float64
	TotalAmount         float64
	IsPaid              bool
	PayoutTransactionID string
	PaidAt              *time.Time
}

// NewAllocation creates an AllocationBuilder for the given distribution and member.
func NewAllocation(distributionID, memberID string) *AllocationBuilder {
	return &AllocationBuilder{
		ID:               MakeID(),
		DistributionID:   distributionID,
		MemberID:         memberID,
		CapitalShare:     600_000,
		TransactionShare: 400_000,
		TotalAmount:      1_000_000,
	}
}

// WithAmounts sets the capital and transaction shares; the total is their sum.
func (b *AllocationBuilder) WithAmounts(capital, transaction float64) *AllocationBuilder {
	b.CapitalShare = capital
	b.TransactionShare = transaction
	b.TotalAmount = capital + transaction
	return b
}

// Paid marks the allocation as paid out.
func (b *AllocationBuilder) Paid() *AllocationBuilder {
	b.IsPaid = true
	b.PayoutTransactionID = MakeID()
	paidAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	b.PaidAt = &paidAt
	return b
}

// Build creates the allocation in the database and returns it.
func (b *AllocationBuilder) Build(t *testing.T, db *sql.DB) model.Allocation {
	t.Helper()

	query := `
		INSERT INTO shu_allocation (
			id, distribution_id, member_id, capital_share, transaction_share,
			total_amount, is_paid, payout_transaction_id, paid_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var paidAt interface{}
	if b.PaidAt != nil {
		paidAt = b.PaidAt.Format("2006-01-02 15:04:05")
	}
	var payoutRef interface{}
	if b.PayoutTransactionID != "" {
		payoutRef = b.PayoutTransactionID
	}

	_, err := db.Exec(query, b.ID, b.DistributionID, b.MemberID,
		b.CapitalShare, b.TransactionShare, b.TotalAmount, b.IsPaid, payoutRef, paidAt)
	if err != nil {
		t.Fatalf("Failed to create test allocation: %v", err)
	}

	return model.Allocation{
		ID:                  b.ID,
		DistributionID:      b.DistributionID,
		MemberID:            b.MemberID,
		CapitalShare:        b.CapitalShare,
		TransactionShare:    b.TransactionShare,
		TotalAmount:         b.TotalAmount,
		IsPaid:              b.IsPaid,
		PayoutTransactionID: b.PayoutTransactionID,
		PaidAt:              b.PaidAt,
	}
}

// FeeScheduleBuilder provides a fluent interface for creating test fee schedules.
//
// Example usage:
//
//	schedule := testutil.NewFeeSchedule(member.ID).
//	    WithMonthlyAmount(150_000).
//	    Build(t, db)
type FeeScheduleBuilder struct {
	ID            string
	MemberID      string
	FeeType       string
	MonthlyAmount float64
	StartsOn      time.Time
	EndsOn        *time.Time
	IsActive      bool
}

// NewFeeSchedule creates a FeeScheduleBuilder for the given member.
func NewFeeSchedule(memberID string) *FeeScheduleBuilder {
	return &FeeScheduleBuilder{
		ID:            MakeID(),
		MemberID:      memberID,
		FeeType:       "maintenance",
		MonthlyAmount: 100_000,
		StartsOn:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
}

// WithFeeType sets the fee type.
func (b *FeeScheduleBuilder) WithFeeType(feeType string) *FeeScheduleBuilder {
	b.FeeType = feeType
	return b
}

// WithMonthlyAmount sets the monthly amount.
func (b *FeeScheduleBuilder) WithMonthlyAmount(amount float64) *FeeScheduleBuilder {
	b.MonthlyAmount = amount
	return b
}

// StartingOn sets the start date from a YYYY-MM-DD string.
func (b *FeeScheduleBuilder) StartingOn(date string) *FeeScheduleBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: invalid schedule start date " + date)
	}
	b.StartsOn = parsed
	return b
}

// EndingOn sets the end date from a YYYY-MM-DD string.
func (b *FeeScheduleBuilder) EndingOn(date string) *FeeScheduleBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: invalid schedule end date " + date)
	}
	b.EndsOn = &parsed
	return b
}

// Inactive marks the schedule as inactive.
func (b *FeeScheduleBuilder) Inactive() *FeeScheduleBuilder {
	b.IsActive = false
	return b
}

// Build creates the fee schedule in the database and returns it.
func (b *FeeScheduleBuilder) Build(t *testing.T, db *sql.DB) model.FeeSchedule {
	t.Helper()

	query := `
		INSERT INTO fee_schedule (id, member_id, fee_type, monthly_amount, starts_on, ends_on, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var endsOn interface{}
	if b.EndsOn != nil {
		endsOn = b.EndsOn.Format("2006-01-02")
	}

	_, err := db.Exec(query, b.ID, b.MemberID, b.FeeType, b.MonthlyAmount,
		b.StartsOn.Format("2006-01-02"), endsOn, b.IsActive)
	if err != nil {
		t.Fatalf("Failed to create test fee schedule: %v", err)
	}

	return model.FeeSchedule{
		ID:            b.ID,
		MemberID:      b.MemberID,
		FeeType:       b.FeeType,
		MonthlyAmount: b.MonthlyAmount,
		StartsOn:      b.StartsOn,
		EndsOn:        b.EndsOn,
		IsActive:      b.IsActive,
	}
}

// Convenience functions

// CreateMemberWithSavings creates a member together with one savings account
// holding the given balance.
func CreateMemberWithSavings(t *testing.T, db *sql.DB, name string, balance float64) (model.Member, model.SavingsAccount) {
	t.Helper()

	member := NewMember().WithName(name).Build(t, db)
	account := NewSavingsAccount(member.ID).WithBalance(balance).Build(t, db)
	return member, account
}
