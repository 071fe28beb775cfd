package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for savings transactions.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests to retrieve savings transactions.
// Optional filters: memberId and year query parameters.
//
// Endpoint: GET /api/transaction?memberId={uuid}&year=2024
// Response: 200 OK with array of TransactionResponse
// Error: 400 Bad Request if a filter value is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("memberId")
	if memberID != "" {
		if err := validation.ValidateUUID(memberID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid memberId", err.Error())
			return
		}
	}

	fiscalYear := 0
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		var err error
		fiscalYear, err = strconv.Atoi(yearParam)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
	}

	transactions, err := h.transactionService.GetTransactions(memberID, fiscalYear)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transactions", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with TransactionResponse
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		respondServiceError(w, "failed to retrieve transaction", err)
		return
	}

	respondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a deposit or withdrawal.
// The owning account's balance is adjusted in the same database transaction.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (accountId, memberId, date, type, amount, description)
// Response: 201 Created with SavingsTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		respondServiceError(w, "failed to create transaction", err)
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}
