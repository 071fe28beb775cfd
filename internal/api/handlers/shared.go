package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// parseJSON decodes the request body into the requested type.
func parseJSON[T any](r *http.Request) (T, error) {
	var payload T
	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}

// respondServiceError maps service-layer errors onto HTTP status codes:
// validation failures to 400, missing entities to 404, state conflicts to
// 409, missing calculation data to 422, everything else to 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var validationErr *validation.Error

	switch {
	case errors.As(err, &validationErr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)

	case errors.Is(err, apperrors.ErrInvalidPolicyPercentages),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, validation.ErrInvalidUUID):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())

	case errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrSavingsAccountNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound),
		errors.Is(err, apperrors.ErrPolicyNotFound),
		errors.Is(err, apperrors.ErrDistributionNotFound),
		errors.Is(err, apperrors.ErrFeeScheduleNotFound),
		errors.Is(err, apperrors.ErrFeeInvoiceNotFound),
		errors.Is(err, apperrors.ErrSettingNotFound):
		response.RespondError(w, http.StatusNotFound, message, err.Error())

	case errors.Is(err, apperrors.ErrNoSavingsData),
		errors.Is(err, apperrors.ErrNoTransactionData):
		response.RespondError(w, http.StatusUnprocessableEntity, message, err.Error())

	case errors.Is(err, apperrors.ErrDistributionNotApproved),
		errors.Is(err, apperrors.ErrDistributionAlreadyApproved),
		errors.Is(err, apperrors.ErrNoAllocations),
		errors.Is(err, apperrors.ErrAllAllocationsPaid),
		errors.Is(err, apperrors.ErrAllocationsAlreadyPaid),
		errors.Is(err, apperrors.ErrInvoiceAlreadyPaid):
		response.RespondError(w, http.StatusConflict, message, err.Error())

	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
