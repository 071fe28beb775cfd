package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/handlers"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/testutil"
)

func TestMemberHandler_CreateMember(t *testing.T) {
	t.Run("registers a member", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewMemberHandler(testutil.NewTestMemberService(t, db))

		body, _ := json.Marshal(map[string]any{
			"memberNumber": "M-001",
			"name":         "Budi Santoso",
			"email":        "budi@example.com",
			"joinDate":     "2024-01-15",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/member", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateMember(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var member model.Member
		if err := json.NewDecoder(rec.Body).Decode(&member); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if member.MemberNumber != "M-001" {
			t.Errorf("Expected member number M-001, got %s", member.MemberNumber)
		}
		testutil.AssertRowCount(t, db, "savings_account", 1)
	})

	t.Run("missing fields are a 400 with field errors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewMemberHandler(testutil.NewTestMemberService(t, db))

		body, _ := json.Marshal(map[string]any{
			"email": "budi@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/member", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateMember(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rec.Code)
		}

		var errResp response.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		fields, ok := errResp.Details.(map[string]any)
		if !ok {
			t.Fatalf("Expected field details map, got %T", errResp.Details)
		}
		for _, field := range []string{"memberNumber", "name", "joinDate"} {
			if _, ok := fields[field]; !ok {
				t.Errorf("Expected error on field %q, got %v", field, fields)
			}
		}
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewMemberHandler(testutil.NewTestMemberService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/member", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()

		handler.CreateMember(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestMemberHandler_GetMember(t *testing.T) {
	t.Run("unknown member is a 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewMemberHandler(testutil.NewTestMemberService(t, db))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/member/x",
			map[string]string{"uuid": testutil.MakeID()})
		rec := httptest.NewRecorder()

		handler.GetMember(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

func TestMemberHandler_Members(t *testing.T) {
	t.Run("active filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewMemberHandler(testutil.NewTestMemberService(t, db))

		testutil.NewMember().Build(t, db)
		testutil.NewMember().Inactive().Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/member",
			map[string]string{"active": "true"})
		rec := httptest.NewRecorder()

		handler.Members(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var members []model.Member
		if err := json.NewDecoder(rec.Body).Decode(&members); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("Expected 1 active member, got %d", len(members))
		}
	})
}
