// Package handler provides HTTP handlers for the local UI API.
package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// DocumentHandler handles document lifecycle requests
type DocumentHandler struct {
	documentService domain.DocumentService
	settingsService domain.SettingsService
	logger          domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, settingsService domain.SettingsService, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		settingsService: settingsService,
		logger:          logger,
	}
}

type openDocumentRequest struct {
	Path string `json:"path"`
}

type documentResponse struct {
	*domain.DocumentInfo
	SuggestedName string `json:"suggested_name"`
}

// OpenDocument loads a PDF from a local path and returns its description.
func (h *DocumentHandler) OpenDocument(w http.ResponseWriter, r *http.Request) {
	var req openDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	info, err := h.documentService.Load(req.Path)
	if err != nil {
		h.logger.Warn("document load failed", "path", req.Path, "error", err)
		writeDomainError(w, err)
		return
	}

	// Remember the directory and the file for the next open dialog.
	if err := h.settingsService.RecordInputPath(req.Path); err != nil {
		h.logger.Warn("failed to record input path", "error", err)
	}

	writeJSON(w, http.StatusOK, h.describe(info))
}

// GetDocument returns the currently loaded document.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	info, err := h.documentService.Info()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.describe(info))
}

// CloseDocument releases the current document handle.
func (h *DocumentHandler) CloseDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Close(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// SuggestName returns the advisory output filename for a page selection,
// e.g. GET /document/suggested-name?pages=2,3,4,5.
func (h *DocumentHandler) SuggestName(w http.ResponseWriter, r *http.Request) {
	info, err := h.documentService.Info()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	pages, err := parsePageList(r.URL.Query().Get("pages"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pages parameter")
		return
	}

	base := strings.TrimSuffix(info.Filename, filepath.Ext(info.Filename))
	writeJSON(w, http.StatusOK, map[string]string{
		"suggested_name": domain.SuggestOutputFilename(base, pages),
	})
}

func (h *DocumentHandler) describe(info *domain.DocumentInfo) documentResponse {
	base := strings.TrimSuffix(info.Filename, filepath.Ext(info.Filename))
	pages := make([]int, info.PageCount)
	for i := range pages {
		pages[i] = i + 1
	}
	return documentResponse{
		DocumentInfo:  info,
		SuggestedName: domain.SuggestOutputFilename(base, pages),
	}
}

// parsePageList parses a comma-separated page list like "2,3,4".
func parsePageList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	pages := make([]int, 0, len(parts))
	for _, part := range parts {
		page, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
