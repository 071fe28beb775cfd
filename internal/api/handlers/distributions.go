package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/middleware"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/validation"
)

// DistributionHandler handles HTTP requests for the SHU distribution
// lifecycle: draft creation, allocation calculation, approval, the payout
// eligibility gate and payout.
type DistributionHandler struct {
	distributionService *service.DistributionService
}

// NewDistributionHandler creates a new DistributionHandler with the provided service dependency.
func NewDistributionHandler(distributionService *service.DistributionService) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
	}
}

// Distributions handles GET requests to retrieve all distributions.
//
// Endpoint: GET /api/distribution
// Response: 200 OK with array of Distribution
// Error: 500 Internal Server Error if retrieval fails
func (h *DistributionHandler) Distributions(w http.ResponseWriter, r *http.Request) {
	distributions, err := h.distributionService.GetAllDistributions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve distributions", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, distributions)
}

// GetDistribution handles GET requests to retrieve a single distribution by ID.
//
// Endpoint: GET /api/distribution/{uuid}
// Response: 200 OK with Distribution
// Error: 400 Bad Request if distribution ID is invalid (validated by middleware)
// Error: 404 Not Found if distribution not found
func (h *DistributionHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	distribution, err := h.distributionService.GetDistribution(distributionID)
	if err != nil {
		respondServiceError(w, "failed to retrieve distribution", err)
		return
	}

	respondJSON(w, http.StatusOK, distribution)
}

// CreateDistribution handles POST requests to create a draft distribution.
// The organization-level breakdown is computed from the referenced policy and
// snapshotted onto the draft. Omitting policyId selects the fiscal year's
// active policy.
//
// Endpoint: POST /api/distribution
// Request Body: CreateDistributionRequest (fiscalYear, totalSurplus, policyId, notes)
// Response: 201 Created with Distribution
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the policy does not exist or the year has no active policy
func (h *DistributionHandler) CreateDistribution(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDistributionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDistribution(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	distribution, err := h.distributionService.CreateDistribution(
		req.FiscalYear, req.TotalSurplus, req.PolicyID, req.Notes, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to create distribution", err)
		return
	}

	respondJSON(w, http.StatusCreated, distribution)
}

// CalculateAllocations handles POST requests to compute and persist the
// member allocation set for a distribution. Repeating the call replaces the
// previous allocation set; it is refused once any allocation has been paid.
//
// Endpoint: POST /api/distribution/{uuid}/calculate
// Response: 200 OK with array of AllocationResponse
// Error: 404 Not Found if distribution not found
// Error: 409 Conflict if allocations have already been paid out
// Error: 422 Unprocessable Entity if the fiscal year has no savings or deposit data
func (h *DistributionHandler) CalculateAllocations(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	allocations, err := h.distributionService.CalculateAllocations(r.Context(), distributionID, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to calculate allocations", err)
		return
	}

	respondJSON(w, http.StatusOK, allocations)
}

// Allocations handles GET requests to retrieve a distribution's member
// allocations, largest first.
//
// Endpoint: GET /api/distribution/{uuid}/allocations
// Response: 200 OK with array of AllocationResponse
// Error: 404 Not Found if distribution not found
func (h *DistributionHandler) Allocations(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	allocations, err := h.distributionService.GetAllocations(distributionID)
	if err != nil {
		respondServiceError(w, "failed to retrieve allocations", err)
		return
	}

	respondJSON(w, http.StatusOK, allocations)
}

// ApproveDistribution handles POST requests to approve a draft distribution.
//
// Endpoint: POST /api/distribution/{uuid}/approve
// Response: 200 OK with updated Distribution
// Error: 404 Not Found if distribution not found
// Error: 409 Conflict if the distribution is not in draft status
func (h *DistributionHandler) ApproveDistribution(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	distribution, err := h.distributionService.ApproveDistribution(r.Context(), distributionID, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to approve distribution", err)
		return
	}

	respondJSON(w, http.StatusOK, distribution)
}

// Eligibility handles GET requests for the payout eligibility gate. The
// check is read-only and always returns 200 with the gate verdict; an
// ineligible distribution is not an error.
//
// Endpoint: GET /api/distribution/{uuid}/eligibility
// Response: 200 OK with EligibilityResult
// Error: 404 Not Found if distribution not found
func (h *DistributionHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	result, err := h.distributionService.ValidateForPayout(distributionID)
	if err != nil {
		respondServiceError(w, "failed to validate distribution for payout", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Payout handles POST requests to disburse a distribution. Every unpaid
// allocation is marked paid under one payout batch reference and the
// distribution status rolls forward.
//
// Endpoint: POST /api/distribution/{uuid}/payout
// Response: 200 OK with DistributionSummary
// Error: 404 Not Found if distribution not found
// Error: 409 Conflict if the distribution fails the eligibility gate
func (h *DistributionHandler) Payout(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	summary, err := h.distributionService.PayoutDistribution(r.Context(), distributionID, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to pay out distribution", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Summary handles GET requests for a distribution's payment progress.
//
// Endpoint: GET /api/distribution/{uuid}/summary
// Response: 200 OK with DistributionSummary
// Error: 404 Not Found if distribution not found
func (h *DistributionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	distributionID := chi.URLParam(r, "uuid")

	summary, err := h.distributionService.GetDistributionSummary(distributionID)
	if err != nil {
		respondServiceError(w, "failed to retrieve distribution summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
