package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/request"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
)

// SettingHandler handles HTTP requests for app settings.
type SettingHandler struct {
	settingService service.SettingProvider
}

// NewSettingHandler creates a new SettingHandler with the provided service dependency.
func NewSettingHandler(settingService service.SettingProvider) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// SettingResponse represents a setting read response
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetSetting handles GET requests to read a setting value. Encrypted
// settings are decrypted before being returned; the endpoint sits behind
// authentication.
//
// Endpoint: GET /api/setting/{key}
// Response: 200 OK with SettingResponse
// Error: 404 Not Found if no setting exists for the key
func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := h.settingService.Get(key)
	if err != nil {
		respondServiceError(w, "failed to retrieve setting", err)
		return
	}

	respondJSON(w, http.StatusOK, SettingResponse{Key: key, Value: value})
}

// UpdateSetting handles PUT requests to write a setting value. When the
// payload asks for encryption the value is stored as a fernet token.
//
// Endpoint: PUT /api/setting/{key}
// Request Body: UpdateSettingRequest (value, encrypted)
// Response: 204 No Content
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if the write fails
func (h *SettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	req, err := parseJSON[request.UpdateSettingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingService.Set(key, req.Value, req.Encrypted); err != nil {
		respondServiceError(w, "failed to update setting", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// InvalidateCache handles POST requests to drop every cached setting value,
// forcing subsequent reads back to the database. Used after out-of-band
// database edits.
//
// Endpoint: POST /api/setting/cache/invalidate
// Response: 204 No Content
func (h *SettingHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.settingService.InvalidateCache()
	respondJSON(w, http.StatusNoContent, nil)
}
