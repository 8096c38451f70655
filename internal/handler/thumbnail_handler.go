package handler

import (
	"net/http"
	"strconv"

	"github.com/dinethlive/dpdf-planner/internal/domain"

	"github.com/gorilla/mux"
)

// ThumbnailHandler serves page renderings of the current document.
type ThumbnailHandler struct {
	documentService  domain.DocumentService
	thumbnailService domain.ThumbnailService
	logger           domain.Logger
}

// NewThumbnailHandler creates a new thumbnail handler
func NewThumbnailHandler(documentService domain.DocumentService, thumbnailService domain.ThumbnailService, logger domain.Logger) *ThumbnailHandler {
	return &ThumbnailHandler{
		documentService:  documentService,
		thumbnailService: thumbnailService,
		logger:           logger,
	}
}

// GetThumbnail renders one page of the loaded document as PNG,
// e.g. GET /document/pages/3/thumbnail?width=200.
func (h *ThumbnailHandler) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	info, err := h.documentService.Info()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := strconv.Atoi(mux.Vars(r)["page"])
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "invalid page number")
		return
	}

	width := 0
	if raw := r.URL.Query().Get("width"); raw != "" {
		if width, err = strconv.Atoi(raw); err != nil || width < 1 {
			writeError(w, http.StatusBadRequest, "invalid width")
			return
		}
	}

	data, err := h.thumbnailService.Render(info.Filepath, page, width)
	if err != nil {
		h.logger.Warn("thumbnail render failed", "page", page, "error", err)
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
