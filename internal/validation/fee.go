package validation

import (
	"strings"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

// ValidateCreateFeeSchedule validates a fee schedule creation request.
//
// Rules:
//   - memberId: Must be a valid UUID
//   - feeType: non-empty
//   - monthlyAmount: must be positive
//   - startsOn: YYYY-MM-DD format
//   - endsOn: YYYY-MM-DD format if provided, not before startsOn
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateFeeSchedule(req request.CreateFeeScheduleRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.MemberID); err != nil {
		return err
	}

	if strings.TrimSpace(req.FeeType) == "" {
		errors["feeType"] = "feeType is required"
	}

	if req.MonthlyAmount <= 0 {
		errors["monthlyAmount"] = "monthlyAmount must be positive"
	}

	var startsOn time.Time
	if strings.TrimSpace(req.StartsOn) == "" {
		errors["startsOn"] = "startsOn is required"
	} else {
		var err error
		startsOn, err = time.Parse("2006-01-02", req.StartsOn)
		if err != nil {
			errors["startsOn"] = err.Error()
		}
	}

	if req.EndsOn != nil {
		endsOn, err := time.Parse("2006-01-02", *req.EndsOn)
		if err != nil {
			errors["endsOn"] = err.Error()
		} else if !startsOn.IsZero() && endsOn.Before(startsOn) {
			errors["endsOn"] = "endsOn cannot be before startsOn"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
