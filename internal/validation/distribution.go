package validation

import (
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

// ValidateCreateDistribution validates a distribution creation request.
//
// Rules:
//   - policyId: must be a valid UUID when present; empty selects the fiscal
//     year's active policy
//   - fiscalYear: between 2000 and 2100
//   - totalSurplus: must not be negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateDistribution(req request.CreateDistributionRequest) error {
	errors := make(map[string]string)

	if req.PolicyID != "" {
		if err := ValidateUUID(req.PolicyID); err != nil {
			return err
		}
	}

	if req.FiscalYear < 2000 || req.FiscalYear > 2100 {
		errors["fiscalYear"] = fmt.Sprintf("invalid fiscal year: %d", req.FiscalYear)
	}

	if req.TotalSurplus < 0 {
		errors["totalSurplus"] = "totalSurplus cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
