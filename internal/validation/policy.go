package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

// Percentage consistency limits. Kept in sync with the calculator's
// ValidatePolicy predicate; these produce the operator-facing field errors.
const (
	percentageTolerance = 0.01
	minimumReservePct   = 30.0
)

// ValidateCreatePolicy validates a percentage-policy creation request.
//
// Rules:
//   - name: non-empty
//   - fiscalYear: between 2000 and 2100
//   - reserve + memberPool + management + staff + socialFund must sum to 100 (±0.01)
//   - capitalShare + transactionShare must sum to 100 (±0.01)
//   - reserve must be at least 30
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreatePolicy(req request.CreatePolicyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.FiscalYear < 2000 || req.FiscalYear > 2100 {
		errors["fiscalYear"] = fmt.Sprintf("invalid fiscal year: %d", req.FiscalYear)
	}

	level1 := req.ReservePct + req.MemberPoolPct + req.ManagementPct + req.StaffPct + req.SocialFundPct
	if math.Abs(level1-100) > percentageTolerance {
		errors["percentages"] = fmt.Sprintf("level-1 percentages must sum to 100, got %.2f", level1)
	}

	level2 := req.CapitalSharePct + req.TransactionSharePct
	if math.Abs(level2-100) > percentageTolerance {
		errors["sharePercentages"] = fmt.Sprintf("capital and transaction share percentages must sum to 100, got %.2f", level2)
	}

	if req.ReservePct < minimumReservePct {
		errors["reservePct"] = fmt.Sprintf("reserve percentage must be at least %.0f, got %.2f", minimumReservePct, req.ReservePct)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
