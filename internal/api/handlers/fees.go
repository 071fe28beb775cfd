package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/validation"
)

// FeeHandler handles HTTP requests for estate-fee schedules and invoices.
type FeeHandler struct {
	feeService *service.FeeService
}

// NewFeeHandler creates a new FeeHandler with the provided service dependency.
func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

// Schedules handles GET requests to retrieve fee schedules.
//
// Endpoint: GET /api/fee/schedule?active=true
// Response: 200 OK with array of FeeSchedule
// Error: 500 Internal Server Error if retrieval fails
func (h *FeeHandler) Schedules(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	schedules, err := h.feeService.GetSchedules(activeOnly)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fee schedules", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, schedules)
}

// CreateSchedule handles POST requests to register a recurring monthly fee.
//
// Endpoint: POST /api/fee/schedule
// Request Body: CreateFeeScheduleRequest (memberId, feeType, monthlyAmount, startsOn, endsOn)
// Response: 201 Created with FeeSchedule
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the member does not exist
func (h *FeeHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFeeScheduleRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFeeSchedule(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	startsOn, err := time.Parse("2006-01-02", req.StartsOn)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid startsOn", err.Error())
		return
	}

	var endsOn *time.Time
	if req.EndsOn != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndsOn)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid endsOn", err.Error())
			return
		}
		endsOn = &parsed
	}

	schedule, err := h.feeService.CreateSchedule(req.MemberID, req.FeeType, req.MonthlyAmount, startsOn, endsOn)
	if err != nil {
		respondServiceError(w, "failed to create fee schedule", err)
		return
	}

	respondJSON(w, http.StatusCreated, schedule)
}

// Invoices handles GET requests to retrieve fee invoices.
// Optional filters: memberId and status query parameters.
//
// Endpoint: GET /api/fee/invoice?memberId={uuid}&status=open
// Response: 200 OK with array of FeeInvoice
// Error: 400 Bad Request if a filter value is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *FeeHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("memberId")
	if memberID != "" {
		if err := validation.ValidateUUID(memberID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid memberId", err.Error())
			return
		}
	}

	invoices, err := h.feeService.GetInvoices(memberID, r.URL.Query().Get("status"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fee invoices", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// PayInvoice handles POST requests to settle an open invoice.
//
// Endpoint: POST /api/fee/invoice/{uuid}/pay
// Response: 200 OK with updated FeeInvoice
// Error: 404 Not Found if invoice not found
// Error: 409 Conflict if the invoice is already paid
func (h *FeeHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "uuid")

	invoice, err := h.feeService.PayInvoice(invoiceID)
	if err != nil {
		respondServiceError(w, "failed to pay invoice", err)
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// GenerateInvoicesResponse reports how many invoices a generation run created.
type GenerateInvoicesResponse struct {
	Period  string `json:"period"`
	Created int    `json:"created"`
}

// GenerateInvoices handles POST requests to generate invoices for a period
// on demand. The scheduled job runs the same generation monthly; repeat runs
// for a period are idempotent.
//
// Endpoint: POST /api/fee/invoice/generate?period=2024-01
// Response: 200 OK with GenerateInvoicesResponse
// Error: 400 Bad Request if the period is malformed
func (h *FeeHandler) GenerateInvoices(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}

	created, err := h.feeService.GenerateInvoices(period)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to generate invoices", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, GenerateInvoicesResponse{Period: period, Created: created})
}
