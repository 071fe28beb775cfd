package validation

import (
	"strings"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
)

// ValidateCreateMember validates a member registration request.
//
// Required fields:
//   - memberNumber: non-empty
//   - name: non-empty
//   - joinDate: YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateMember(req request.CreateMemberRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.MemberNumber) == "" {
		errors["memberNumber"] = "memberNumber is required"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.JoinDate) == "" {
		errors["joinDate"] = "joinDate is required"
	} else if _, err := time.Parse("2006-01-02", req.JoinDate); err != nil {
		errors["joinDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
