package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// ExtractHandler handles extraction requests and exposes a progress snapshot
// the UI can poll while an extraction runs.
type ExtractHandler struct {
	extractor       domain.Extractor
	settingsService domain.SettingsService
	logger          domain.Logger

	mu       sync.Mutex
	progress progressSnapshot
}

type progressSnapshot struct {
	Active    bool `json:"active"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extractor domain.Extractor, settingsService domain.SettingsService, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractor:       extractor,
		settingsService: settingsService,
		logger:          logger,
	}
}

type extractRequest struct {
	Pages     []int       `json:"pages"`
	Rotations map[int]int `json:"rotations"`
	// Either a full output path, or a directory plus filename.
	OutputPath string `json:"output_path"`
	OutputDir  string `json:"output_dir"`
	Filename   string `json:"filename"`
}

// Extract runs the pipeline synchronously and returns its summary.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outputPath, err := resolveOutputPath(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := domain.ValidateOutputPath(outputPath); err != nil {
		writeDomainError(w, err)
		return
	}

	h.setProgress(progressSnapshot{Active: true, Total: len(req.Pages)})
	defer func() {
		h.mu.Lock()
		h.progress.Active = false
		h.mu.Unlock()
	}()

	summary, err := h.extractor.Extract(domain.ExtractionRequest{
		Pages:      req.Pages,
		Rotations:  req.Rotations,
		OutputPath: outputPath,
	}, func(completed, total int) {
		// Invoked in-line by the pipeline; keep it cheap.
		h.setProgress(progressSnapshot{Active: true, Completed: completed, Total: total})
	})
	if err != nil {
		h.logger.Warn("extraction failed", "output", outputPath, "error", err)
		writeDomainError(w, err)
		return
	}

	if err := h.settingsService.RecordOutputDir(filepath.Dir(summary.OutputPath)); err != nil {
		h.logger.Warn("failed to record output dir", "error", err)
	}

	writeJSON(w, http.StatusOK, summary)
}

// Progress returns the latest progress snapshot.
func (h *ExtractHandler) Progress(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snapshot := h.progress
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *ExtractHandler) setProgress(p progressSnapshot) {
	h.mu.Lock()
	h.progress = p
	h.mu.Unlock()
}

// resolveOutputPath accepts either an explicit output path or a directory
// plus filename, appending the .pdf extension when missing.
func resolveOutputPath(req extractRequest) (string, error) {
	if req.OutputPath != "" {
		return req.OutputPath, nil
	}
	if req.OutputDir == "" || req.Filename == "" {
		return "", &domain.ValidationError{Field: "output_path", Message: "output_path or output_dir and filename are required"}
	}
	name := req.Filename
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		name += ".pdf"
	}
	return filepath.Join(req.OutputDir, name), nil
}
