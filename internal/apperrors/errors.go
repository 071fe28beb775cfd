package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrMemberNotFound indicates that a member with the given ID does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrSavingsAccountNotFound indicates that a savings account with the given ID does not exist.
	ErrSavingsAccountNotFound = errors.New("savings account not found")

	// ErrTransactionNotFound indicates that a savings transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPolicyNotFound indicates that a percentage policy with the given ID does not exist.
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrDistributionNotFound indicates that a distribution with the given ID does not exist.
	ErrDistributionNotFound = errors.New("distribution not found")

	// ErrFeeScheduleNotFound indicates that a fee schedule with the given ID does not exist.
	ErrFeeScheduleNotFound = errors.New("fee schedule not found")

	// ErrFeeInvoiceNotFound indicates that a fee invoice with the given ID does not exist.
	ErrFeeInvoiceNotFound = errors.New("fee invoice not found")

	// ErrSettingNotFound indicates that no setting exists for the requested key.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidPolicyPercentages indicates that a policy fails the percentage
	// consistency checks (level sums or reserve floor).
	ErrInvalidPolicyPercentages = errors.New("invalid policy percentages")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Data errors indicate that a calculation cannot run because the fiscal year
// has no underlying data. The calculation aborts entirely; nothing is persisted.
var (
	// ErrNoSavingsData indicates that no member savings exist for the fiscal year.
	ErrNoSavingsData = errors.New("no savings data for year")

	// ErrNoTransactionData indicates that no deposit transactions exist for the fiscal year.
	ErrNoTransactionData = errors.New("no transaction data for year")
)

// State errors indicate that an operation was attempted against a record
// whose lifecycle status does not permit it.
var (
	// ErrDistributionNotApproved indicates a payout was attempted on a
	// distribution that has not been approved.
	ErrDistributionNotApproved = errors.New("distribution is not approved")

	// ErrNoAllocations indicates a payout was attempted before member
	// allocations were calculated.
	ErrNoAllocations = errors.New("no allocations calculated")

	// ErrAllAllocationsPaid indicates every allocation has already been paid out.
	ErrAllAllocationsPaid = errors.New("all allocations already paid out")

	// ErrAllocationsAlreadyPaid indicates a recompute was attempted after one
	// or more allocations were paid; recomputing would discard payout state.
	ErrAllocationsAlreadyPaid = errors.New("allocations already paid, recompute refused")

	// ErrDistributionAlreadyApproved indicates a repeat approval attempt.
	ErrDistributionAlreadyApproved = errors.New("distribution already approved")

	// ErrInvoiceAlreadyPaid indicates a fee invoice has already been settled.
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
)
