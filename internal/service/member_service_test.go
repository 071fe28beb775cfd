package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/testutil"
)

func TestMemberService_CreateMember(t *testing.T) {
	t.Run("registration opens a savings account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestMemberService(t, db)

		joinDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		member, err := svc.CreateMember("M-001", "Budi Santoso", "budi@example.com", "0812000111", joinDate)
		if err != nil {
			t.Fatalf("CreateMember() returned unexpected error: %v", err)
		}

		if !member.IsActive {
			t.Error("Expected new member to be active")
		}

		accounts, err := svc.GetMemberSavings(member.ID)
		if err != nil {
			t.Fatalf("GetMemberSavings() returned unexpected error: %v", err)
		}

		if len(accounts) != 1 {
			t.Fatalf("Expected 1 savings account, got %d", len(accounts))
		}
		if accounts[0].AccountNumber != "SA-M-001" {
			t.Errorf("Expected account number SA-M-001, got %s", accounts[0].AccountNumber)
		}
		if accounts[0].Balance != 0 {
			t.Errorf("Expected opening balance 0, got %f", accounts[0].Balance)
		}
	})

	t.Run("duplicate member number is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestMemberService(t, db)

		testutil.NewMember().WithMemberNumber("M-001").Build(t, db)

		_, err := svc.CreateMember("M-001", "Second Member", "", "", time.Now())
		if err == nil {
			t.Fatal("Expected error for duplicate member number, got nil")
		}
	})
}

func TestMemberService_GetAllMembers(t *testing.T) {
	t.Run("active filter excludes inactive members", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestMemberService(t, db)

		testutil.NewMember().Build(t, db)
		testutil.NewMember().Build(t, db)
		testutil.NewMember().Inactive().Build(t, db)

		active, err := svc.GetAllMembers(true)
		if err != nil {
			t.Fatalf("GetAllMembers() returned unexpected error: %v", err)
		}
		if len(active) != 2 {
			t.Errorf("Expected 2 active members, got %d", len(active))
		}

		all, err := svc.GetAllMembers(false)
		if err != nil {
			t.Fatalf("GetAllMembers() returned unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 members, got %d", len(all))
		}
	})
}

func TestMemberService_GetMember(t *testing.T) {
	t.Run("unknown member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestMemberService(t, db)

		_, err := svc.GetMember(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrMemberNotFound) {
			t.Errorf("Expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("savings lookup for unknown member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestMemberService(t, db)

		_, err := svc.GetMemberSavings(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrMemberNotFound) {
			t.Errorf("Expected ErrMemberNotFound, got %v", err)
		}
	})
}
