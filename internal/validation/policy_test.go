package validation

import (
	"errors"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

func validPolicyRequest() request.CreatePolicyRequest {
	return request.CreatePolicyRequest{
		Name:                "Standard",
		FiscalYear:          2024,
		ReservePct:          30,
		MemberPoolPct:       50,
		ManagementPct:       10,
		StaffPct:            5,
		SocialFundPct:       5,
		CapitalSharePct:     60,
		TransactionSharePct: 40,
	}
}

func TestValidateCreatePolicy(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*request.CreatePolicyRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *request.CreatePolicyRequest) {},
		},
		{
			name:   "tolerance absorbs rounding noise",
			mutate: func(r *request.CreatePolicyRequest) { r.SocialFundPct = 5.009 },
		},
		{
			name:      "empty name",
			mutate:    func(r *request.CreatePolicyRequest) { r.Name = "   " },
			wantField: "name",
		},
		{
			name:      "fiscal year too early",
			mutate:    func(r *request.CreatePolicyRequest) { r.FiscalYear = 1999 },
			wantField: "fiscalYear",
		},
		{
			name:      "fiscal year too late",
			mutate:    func(r *request.CreatePolicyRequest) { r.FiscalYear = 2101 },
			wantField: "fiscalYear",
		},
		{
			name:      "level-1 percentages off by more than tolerance",
			mutate:    func(r *request.CreatePolicyRequest) { r.SocialFundPct = 6 },
			wantField: "percentages",
		},
		{
			name:      "share percentages off by more than tolerance",
			mutate:    func(r *request.CreatePolicyRequest) { r.TransactionSharePct = 41 },
			wantField: "sharePercentages",
		},
		{
			name: "reserve below the statutory floor",
			mutate: func(r *request.CreatePolicyRequest) {
				r.ReservePct = 25
				r.MemberPoolPct = 55
			},
			wantField: "reservePct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPolicyRequest()
			tt.mutate(&req)

			err := ValidateCreatePolicy(req)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var validationErr *Error
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected *Error, got %v", err)
			}
			if _, ok := validationErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.wantField, validationErr.Fields)
			}
		})
	}

	t.Run("collects every failing field", func(t *testing.T) {
		req := validPolicyRequest()
		req.Name = ""
		req.ReservePct = 10

		err := ValidateCreatePolicy(req)

		var validationErr *Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected *Error, got %v", err)
		}
		for _, field := range []string{"name", "percentages", "reservePct"} {
			if _, ok := validationErr.Fields[field]; !ok {
				t.Errorf("Expected error on field %q, got %v", field, validationErr.Fields)
			}
		}
	})
}

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("Expected valid UUID, got %v", err)
	}

	err := ValidateUUID("not-a-uuid")
	if !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}
}
