package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dinethlive/dpdf-planner/internal/domain"
	"github.com/dinethlive/dpdf-planner/pkg/fileutil"
)

// SettingsHandler handles user preference requests
type SettingsHandler struct {
	settingsService domain.SettingsService
	logger          domain.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService domain.SettingsService, logger domain.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings returns the persisted preferences.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings replaces the persisted preferences.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.settingsService.Update(&settings); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &settings)
}

type revealRequest struct {
	Path string `json:"path"`
}

// Reveal opens the platform file manager at the given path. Best effort; the
// UI treats failure as informational.
func (h *SettingsHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req revealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	if err := fileutil.OpenInFileManager(req.Path); err != nil {
		h.logger.Warn("failed to open file manager", "path", req.Path, "error", err)
		writeJSON(w, http.StatusOK, map[string]bool{"opened": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"opened": true})
}
