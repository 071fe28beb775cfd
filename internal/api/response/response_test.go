package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status, content type and body", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.RespondJSON(rec, http.StatusCreated, map[string]string{"id": "abc"})

		if rec.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %q", ct)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response body: %v", err)
		}
		if body["id"] != "abc" {
			t.Errorf("Expected id abc, got %q", body["id"])
		}
	})

	t.Run("nil data sends status only", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.RespondJSON(rec, http.StatusNoContent, nil)

		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %q", rec.Body.String())
		}
	})
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	response.RespondError(rec, http.StatusNotFound, "member not found", "member not found: abc")

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	var body response.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if body.Error != "member not found" {
		t.Errorf("Expected error message %q, got %q", "member not found", body.Error)
	}
	if body.Details != "member not found: abc" {
		t.Errorf("Expected details %q, got %v", "member not found: abc", body.Details)
	}
}
