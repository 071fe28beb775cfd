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

// MemberHandler handles HTTP requests for the member registry.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the memberService.
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new MemberHandler with the provided service dependency.
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Members handles GET requests to retrieve registered members.
//
// Endpoint: GET /api/member?active=true
// Response: 200 OK with array of Member
// Error: 500 Internal Server Error if retrieval fails
func (h *MemberHandler) Members(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	members, err := h.memberService.GetAllMembers(activeOnly)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve members", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, members)
}

// GetMember handles GET requests to retrieve a single member by ID.
//
// Endpoint: GET /api/member/{uuid}
// Response: 200 OK with Member
// Error: 400 Bad Request if member ID is invalid (validated by middleware)
// Error: 404 Not Found if member not found
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "uuid")

	member, err := h.memberService.GetMember(memberID)
	if err != nil {
		respondServiceError(w, "failed to retrieve member", err)
		return
	}

	respondJSON(w, http.StatusOK, member)
}

// CreateMember handles POST requests to register a new member.
// A first savings account is opened alongside the member record.
//
// Endpoint: POST /api/member
// Request Body: CreateMemberRequest (memberNumber, name, email, phone, joinDate)
// Response: 201 Created with Member
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateMemberRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateMember(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid joinDate", err.Error())
		return
	}

	member, err := h.memberService.CreateMember(req.MemberNumber, req.Name, req.Email, req.Phone, joinDate)
	if err != nil {
		respondServiceError(w, "failed to create member", err)
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

// MemberSavings handles GET requests to retrieve a member's savings accounts.
//
// Endpoint: GET /api/member/{uuid}/savings
// Response: 200 OK with array of SavingsAccount
// Error: 404 Not Found if member not found
func (h *MemberHandler) MemberSavings(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "uuid")

	accounts, err := h.memberService.GetMemberSavings(memberID)
	if err != nil {
		respondServiceError(w, "failed to retrieve member savings", err)
		return
	}

	respondJSON(w, http.StatusOK, accounts)
}
