package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// MemberService handles member registry business logic.
type MemberService struct {
	memberRepo  *repository.MemberRepository
	savingsRepo *repository.SavingsRepository
}

// NewMemberService creates a new MemberService with the provided repository dependencies.
func NewMemberService(
	memberRepo *repository.MemberRepository,
	savingsRepo *repository.SavingsRepository,
) *MemberService {
	return &MemberService{
		memberRepo:  memberRepo,
		savingsRepo: savingsRepo,
	}
}

// GetAllMembers returns members, optionally restricted to active ones.
func (s *MemberService) GetAllMembers(activeOnly bool) ([]model.Member, error) {
	return s.memberRepo.GetMembers(activeOnly)
}

// GetMember returns a single member by ID.
func (s *MemberService) GetMember(memberID string) (model.Member, error) {
	return s.memberRepo.GetMemberOnID(memberID)
}

// CreateMember registers a new member and opens their first savings account.
func (s *MemberService) CreateMember(memberNumber, name, email, phone string, joinDate time.Time) (*model.Member, error) {
	member := &model.Member{
		ID:           uuid.New().String(),
		MemberNumber: memberNumber,
		Name:         name,
		Email:        email,
		Phone:        phone,
		JoinDate:     joinDate,
		IsActive:     true,
	}

	if err := s.memberRepo.InsertMember(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	account := &model.SavingsAccount{
		ID:            uuid.New().String(),
		MemberID:      member.ID,
		AccountNumber: fmt.Sprintf("SA-%s", memberNumber),
		Balance:       0,
		OpenedAt:      time.Now().UTC(),
	}

	if err := s.savingsRepo.InsertAccount(account); err != nil {
		return nil, fmt.Errorf("failed to open savings account: %w", err)
	}

	return member, nil
}

// GetMemberSavings returns the savings accounts held by a member.
func (s *MemberService) GetMemberSavings(memberID string) ([]model.SavingsAccount, error) {
	if _, err := s.memberRepo.GetMemberOnID(memberID); err != nil {
		return nil, err
	}
	return s.savingsRepo.GetAccountsOnMemberID(memberID)
}
