package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/handlers"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/testutil"
)

func TestDistributionHandler_CreateDistribution(t *testing.T) {
	t.Run("creates a draft", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)

		body, _ := json.Marshal(map[string]any{
			"fiscalYear":   2024,
			"totalSurplus": 100_000_000,
			"policyId":     policy.ID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/distribution", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateDistribution(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var distribution model.Distribution
		if err := json.NewDecoder(rec.Body).Decode(&distribution); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if distribution.Status != model.DistributionDraft {
			t.Errorf("Expected status draft, got %s", distribution.Status)
		}
		if distribution.MemberPoolAmount != 50_000_000 {
			t.Errorf("Expected member pool 50000000, got %f", distribution.MemberPoolAmount)
		}
	})

	t.Run("malformed policy id is a 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		body, _ := json.Marshal(map[string]any{
			"fiscalYear":   2024,
			"totalSurplus": 100,
			"policyId":     "not-a-uuid",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/distribution", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateDistribution(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("unknown policy is a 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		body, _ := json.Marshal(map[string]any{
			"fiscalYear":   2024,
			"totalSurplus": 100,
			"policyId":     testutil.MakeID(),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/distribution", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateDistribution(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

func TestDistributionHandler_GetDistribution(t *testing.T) {
	t.Run("unknown distribution is a 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/distribution/x",
			map[string]string{"uuid": testutil.MakeID()})
		rec := httptest.NewRecorder()

		handler.GetDistribution(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

// TestDistributionHandler_CalculateAllocations tests the HTTP status mapping
// of the allocation run.
//
// WHY: Operators distinguish "fix your data" (422) from "you are about to
// destroy payout records" (409) purely by status code.
func TestDistributionHandler_CalculateAllocations(t *testing.T) {
	t.Run("missing savings data is a 422", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/calculate",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.CalculateAllocations(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected status 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("recompute after payout is a 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Approved().Build(t, db)
		member, account := testutil.CreateMemberWithSavings(t, db, "Member A", 1_000_000)
		testutil.NewTransaction(account.ID, member.ID).Deposit(100_000).Build(t, db)
		testutil.NewAllocation(distribution.ID, member.ID).Paid().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/calculate",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.CalculateAllocations(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("successful run returns the allocation set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Build(t, db)
		member, account := testutil.CreateMemberWithSavings(t, db, "Member A", 1_000_000)
		testutil.NewTransaction(account.ID, member.ID).Deposit(100_000).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/calculate",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.CalculateAllocations(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var allocations []model.AllocationResponse
		if err := json.NewDecoder(rec.Body).Decode(&allocations); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(allocations) != 1 {
			t.Errorf("Expected 1 allocation, got %d", len(allocations))
		}
	})
}

func TestDistributionHandler_ApproveDistribution(t *testing.T) {
	t.Run("repeat approval is a 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Approved().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/approve",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.ApproveDistribution(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", rec.Code)
		}
	})
}

func TestDistributionHandler_Eligibility(t *testing.T) {
	t.Run("ineligible distribution is still a 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/distribution/x/eligibility",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.Eligibility(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var result model.EligibilityResult
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Eligible {
			t.Error("Expected draft distribution to be ineligible")
		}
		if result.Reason == "" {
			t.Error("Expected a reason for ineligibility")
		}
	})
}

func TestDistributionHandler_Payout(t *testing.T) {
	t.Run("payout of a draft is a 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/payout",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.Payout(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", rec.Code)
		}
	})

	t.Run("successful payout returns the summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDistributionHandler(testutil.NewTestDistributionService(t, db))

		policy := testutil.NewPolicy().Build(t, db)
		distribution := testutil.NewDistribution(policy.ID).Approved().Build(t, db)
		member := testutil.NewMember().Build(t, db)
		testutil.NewAllocation(distribution.ID, member.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/distribution/x/payout",
			map[string]string{"uuid": distribution.ID})
		rec := httptest.NewRecorder()

		handler.Payout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var summary model.DistributionSummary
		if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if summary.Status != model.DistributionPaid {
			t.Errorf("Expected status paid, got %s", summary.Status)
		}
		if summary.PaymentProgressPct != 100 {
			t.Errorf("Expected progress 100, got %f", summary.PaymentProgressPct)
		}
	})
}
