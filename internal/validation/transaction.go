package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

// ValidTransactionType contains the allowed savings transaction type values.
var ValidTransactionType = map[string]bool{
	"deposit": true, "withdrawal": true,
}

// ValidateCreateTransaction validates a savings transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - accountId: Must be a valid UUID
//   - memberId: Must be a valid UUID
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: deposit, withdrawal
//   - amount: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AccountID); err != nil {
		return err
	}

	if err := ValidateUUID(req.MemberID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	}
	_, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
