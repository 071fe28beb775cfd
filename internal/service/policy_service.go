package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// PolicyService handles percentage-policy business logic.
type PolicyService struct {
	policyRepo *repository.PolicyRepository
}

// NewPolicyService creates a new PolicyService with the provided repository dependencies.
func NewPolicyService(policyRepo *repository.PolicyRepository) *PolicyService {
	return &PolicyService{policyRepo: policyRepo}
}

// GetPolicies returns policies, optionally filtered by fiscal year.
func (s *PolicyService) GetPolicies(fiscalYear int) ([]model.Policy, error) {
	return s.policyRepo.GetPolicies(fiscalYear)
}

// GetPolicy returns a single policy by ID.
func (s *PolicyService) GetPolicy(policyID string) (model.Policy, error) {
	return s.policyRepo.GetPolicyOnID(policyID)
}

// CreatePolicy validates and persists a new policy. New policies are always
// created inactive; activation is a separate operation.
func (s *PolicyService) CreatePolicy(p model.Policy, actorID string) (*model.Policy, error) {
	if !ValidatePolicy(p) {
		return nil, apperrors.ErrInvalidPolicyPercentages
	}

	p.ID = uuid.New().String()
	p.IsActive = false
	p.CreatedBy = actorID
	p.CreatedAt = time.Now().UTC()

	if err := s.policyRepo.InsertPolicy(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// ActivatePolicy validates the policy and marks it active for its fiscal
// year, deactivating any other active policy for that year.
func (s *PolicyService) ActivatePolicy(ctx context.Context, policyID, actorID string) (model.Policy, error) {
	policy, err := s.policyRepo.GetPolicyOnID(policyID)
	if err != nil {
		return model.Policy{}, err
	}

	if !ValidatePolicy(policy) {
		return model.Policy{}, apperrors.ErrInvalidPolicyPercentages
	}

	if err := s.policyRepo.ActivatePolicy(ctx, policyID, policy.FiscalYear); err != nil {
		return model.Policy{}, err
	}

	slog.Info("policy activated",
		"policy_id", policyID,
		"fiscal_year", policy.FiscalYear,
		"actor_id", actorID,
	)

	return s.policyRepo.GetPolicyOnID(policyID)
}
