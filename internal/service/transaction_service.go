package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// TransactionService handles savings-transaction business logic.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// GetTransactions retrieves transactions, optionally filtered by member and
// fiscal year. Returns enriched transaction data including member names.
func (s *TransactionService) GetTransactions(memberID string, fiscalYear int) ([]model.TransactionResponse, error) {
	return s.transactionRepo.GetTransactions(memberID, fiscalYear)
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.TransactionResponse, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction records a deposit or withdrawal and adjusts the owning
// account balance.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.SavingsTransaction, error) {

	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return &model.SavingsTransaction{}, err
	}

	transaction := &model.SavingsTransaction{
		ID:          uuid.New().String(),
		AccountID:   req.AccountID,
		MemberID:    req.MemberID,
		Date:        transactionDate,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}
