package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/middleware"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/validation"
)

// PolicyHandler handles HTTP requests for percentage policies.
type PolicyHandler struct {
	policyService *service.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler with the provided service dependency.
func NewPolicyHandler(policyService *service.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
	}
}

// Policies handles GET requests to retrieve percentage policies.
// Optional filter: year query parameter.
//
// Endpoint: GET /api/policy?year=2024
// Response: 200 OK with array of Policy
// Error: 400 Bad Request if the year filter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *PolicyHandler) Policies(w http.ResponseWriter, r *http.Request) {
	fiscalYear := 0
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		var err error
		fiscalYear, err = strconv.Atoi(yearParam)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
	}

	policies, err := h.policyService.GetPolicies(fiscalYear)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve policies", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, policies)
}

// GetPolicy handles GET requests to retrieve a single policy by ID.
//
// Endpoint: GET /api/policy/{uuid}
// Response: 200 OK with Policy
// Error: 400 Bad Request if policy ID is invalid (validated by middleware)
// Error: 404 Not Found if policy not found
func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "uuid")

	policy, err := h.policyService.GetPolicy(policyID)
	if err != nil {
		respondServiceError(w, "failed to retrieve policy", err)
		return
	}

	respondJSON(w, http.StatusOK, policy)
}

// CreatePolicy handles POST requests to create a percentage policy.
// New policies are always created inactive.
//
// Endpoint: POST /api/policy
// Request Body: CreatePolicyRequest
// Response: 201 Created with Policy
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PolicyHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePolicyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePolicy(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	policy := model.Policy{
		Name:                req.Name,
		FiscalYear:          req.FiscalYear,
		ReservePct:          req.ReservePct,
		MemberPoolPct:       req.MemberPoolPct,
		ManagementPct:       req.ManagementPct,
		StaffPct:            req.StaffPct,
		SocialFundPct:       req.SocialFundPct,
		CapitalSharePct:     req.CapitalSharePct,
		TransactionSharePct: req.TransactionSharePct,
		Description:         req.Description,
	}

	created, err := h.policyService.CreatePolicy(policy, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to create policy", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ActivatePolicy handles POST requests to mark a policy active for its
// fiscal year. Any other active policy for that year is deactivated.
//
// Endpoint: POST /api/policy/{uuid}/activate
// Response: 200 OK with updated Policy
// Error: 400 Bad Request if the policy fails percentage validation
// Error: 404 Not Found if policy not found
func (h *PolicyHandler) ActivatePolicy(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "uuid")

	policy, err := h.policyService.ActivatePolicy(r.Context(), policyID, middleware.GetActorID(r.Context()))
	if err != nil {
		respondServiceError(w, "failed to activate policy", err)
		return
	}

	respondJSON(w, http.StatusOK, policy)
}
