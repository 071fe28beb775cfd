package validation

import (
	"errors"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

func TestValidateCreateDistribution(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		err := ValidateCreateDistribution(request.CreateDistributionRequest{
			FiscalYear:   2024,
			TotalSurplus: 100_000_000,
			PolicyID:     "550e8400-e29b-41d4-a716-446655440000",
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("empty policy id is allowed", func(t *testing.T) {
		err := ValidateCreateDistribution(request.CreateDistributionRequest{
			FiscalYear:   2024,
			TotalSurplus: 100_000_000,
		})
		if err != nil {
			t.Errorf("Expected no error for empty policyId, got %v", err)
		}
	})

	t.Run("malformed policy id is rejected", func(t *testing.T) {
		err := ValidateCreateDistribution(request.CreateDistributionRequest{
			FiscalYear:   2024,
			TotalSurplus: 100,
			PolicyID:     "not-a-uuid",
		})
		if !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})

	t.Run("negative surplus is rejected", func(t *testing.T) {
		err := ValidateCreateDistribution(request.CreateDistributionRequest{
			FiscalYear:   2024,
			TotalSurplus: -1,
		})

		var validationErr *Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected *Error, got %v", err)
		}
		if _, ok := validationErr.Fields["totalSurplus"]; !ok {
			t.Errorf("Expected error on field totalSurplus, got %v", validationErr.Fields)
		}
	})
}
