package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
)

func NewTestMemberService(t *testing.T, db *sql.DB) *service.MemberService {
	t.Helper()

	memberRepo := repository.NewMemberRepository(db)
	savingsRepo := repository.NewSavingsRepository(db)

	return service.NewMemberService(
		memberRepo,
		savingsRepo,
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
	)
}

func NewTestPolicyService(t *testing.T, db *sql.DB) *service.PolicyService {
	t.Helper()

	policyRepo := repository.NewPolicyRepository(db)

	return service.NewPolicyService(policyRepo)
}

func NewTestDistributionService(t *testing.T, db *sql.DB) *service.DistributionService {
	t.Helper()

	distributionRepo := repository.NewDistributionRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	savingsRepo := repository.NewSavingsRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewDistributionService(
		db,
		distributionRepo,
		allocationRepo,
		policyRepo,
		savingsRepo,
		transactionRepo,
	)
}

func NewTestFeeService(t *testing.T, db *sql.DB) *service.FeeService {
	t.Helper()

	feeRepo := repository.NewFeeRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	return service.NewFeeService(
		feeRepo,
		memberRepo,
	)
}

func NewTestSettingService(t *testing.T, db *sql.DB, encryptionKey string) *service.SettingService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)

	settingService, err := service.NewSettingService(settingRepo, encryptionKey)
	if err != nil {
		t.Fatalf("Failed to create setting service: %v", err)
	}

	return settingService
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeMemberNumber generates a unique member number for testing.
//
// Example usage:
//
//	number := testutil.MakeMemberNumber("M")
//	// Returns: "M-1A2B3C"
func MakeMemberNumber(prefix string) string {
	if prefix == "" {
		prefix = "M"
	}
	return prefix + "-" + randomAlphanumeric(6)
}

// MakeAccountNumber generates a unique savings account number for testing.
//
// Example usage:
//
//	number := testutil.MakeAccountNumber("SA")
//	// Returns: "SA-1A2B3C"
func MakeAccountNumber(prefix string) string {
	if prefix == "" {
		prefix = "SA"
	}
	return prefix + "-" + randomAlphanumeric(6)
}

// MakeMemberName generates a unique member name for testing.
//
// Example usage:
//
//	name := testutil.MakeMemberName("Budi")
//	// Returns: "Budi ABC123"
func MakeMemberName(base string) string {
	if base == "" {
		base = "Member"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
