package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/testutil"
)

func TestPolicyService_CreatePolicy(t *testing.T) {
	t.Run("new policy starts inactive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		policy := model.Policy{
			Name:                "Standard 2024",
			FiscalYear:          2024,
			IsActive:            true,
			ReservePct:          30,
			MemberPoolPct:       50,
			ManagementPct:       10,
			StaffPct:            5,
			SocialFundPct:       5,
			CapitalSharePct:     60,
			TransactionSharePct: 40,
		}

		created, err := svc.CreatePolicy(policy, "actor-1")
		if err != nil {
			t.Fatalf("CreatePolicy() returned unexpected error: %v", err)
		}

		// IsActive on the request is ignored; activation is its own operation.
		if created.IsActive {
			t.Error("Expected new policy to be inactive")
		}
		if created.CreatedBy != "actor-1" {
			t.Errorf("Expected createdBy actor-1, got %s", created.CreatedBy)
		}

		stored, err := svc.GetPolicy(created.ID)
		if err != nil {
			t.Fatalf("GetPolicy() returned unexpected error: %v", err)
		}
		if stored.IsActive {
			t.Error("Expected stored policy to be inactive")
		}
	})

	t.Run("invalid percentages are rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		policy := model.Policy{
			Name:                "Broken",
			FiscalYear:          2024,
			ReservePct:          40,
			MemberPoolPct:       50,
			ManagementPct:       10,
			StaffPct:            5,
			SocialFundPct:       5,
			CapitalSharePct:     60,
			TransactionSharePct: 40,
		}

		_, err := svc.CreatePolicy(policy, "actor-1")
		if !errors.Is(err, apperrors.ErrInvalidPolicyPercentages) {
			t.Errorf("Expected ErrInvalidPolicyPercentages, got %v", err)
		}
		testutil.AssertRowCount(t, db, "shu_policy", 0)
	})
}

// TestPolicyService_ActivatePolicy tests the one-active-policy-per-year rule.
//
// WHY: Distribution drafts read the active policy for their year; two active
// policies would make the breakdown ambiguous.
func TestPolicyService_ActivatePolicy(t *testing.T) {
	t.Run("activation deactivates the year's previous policy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		old := testutil.NewPolicy().WithFiscalYear(2024).Active().Build(t, db)
		replacement := testutil.NewPolicy().WithFiscalYear(2024).Build(t, db)

		activated, err := svc.ActivatePolicy(context.Background(), replacement.ID, "actor-1")
		if err != nil {
			t.Fatalf("ActivatePolicy() returned unexpected error: %v", err)
		}

		if !activated.IsActive {
			t.Error("Expected replacement policy to be active")
		}

		previous, err := svc.GetPolicy(old.ID)
		if err != nil {
			t.Fatalf("GetPolicy() returned unexpected error: %v", err)
		}
		if previous.IsActive {
			t.Error("Expected previous policy to be deactivated")
		}
	})

	t.Run("other fiscal years are untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		lastYear := testutil.NewPolicy().WithFiscalYear(2023).Active().Build(t, db)
		thisYear := testutil.NewPolicy().WithFiscalYear(2024).Build(t, db)

		if _, err := svc.ActivatePolicy(context.Background(), thisYear.ID, "actor-1"); err != nil {
			t.Fatalf("ActivatePolicy() returned unexpected error: %v", err)
		}

		stored, err := svc.GetPolicy(lastYear.ID)
		if err != nil {
			t.Fatalf("GetPolicy() returned unexpected error: %v", err)
		}
		if !stored.IsActive {
			t.Error("Expected last year's policy to remain active")
		}
	})

	t.Run("unknown policy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		_, err := svc.ActivatePolicy(context.Background(), testutil.MakeID(), "actor-1")
		if !errors.Is(err, apperrors.ErrPolicyNotFound) {
			t.Errorf("Expected ErrPolicyNotFound, got %v", err)
		}
	})
}

func TestPolicyService_GetPolicies(t *testing.T) {
	t.Run("filters by fiscal year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPolicyService(t, db)

		testutil.NewPolicy().WithFiscalYear(2023).Build(t, db)
		testutil.NewPolicy().WithFiscalYear(2024).Build(t, db)
		testutil.NewPolicy().WithFiscalYear(2024).Build(t, db)

		policies, err := svc.GetPolicies(2024)
		if err != nil {
			t.Fatalf("GetPolicies() returned unexpected error: %v", err)
		}
		if len(policies) != 2 {
			t.Errorf("Expected 2 policies for 2024, got %d", len(policies))
		}

		all, err := svc.GetPolicies(0)
		if err != nil {
			t.Fatalf("GetPolicies() returned unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 policies without filter, got %d", len(all))
		}
	})
}
