package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dinethlive/dpdf-planner/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ExtractService builds a new PDF from an ordered page selection of the
// currently loaded document. The requested order is the output order: no
// sorting, no deduplication. Each output page carries an absolute rotation
// composed from the page's load-time rotation and the caller's delta.
type ExtractService struct {
	documents *DocumentService
	logger    domain.Logger
}

// NewExtractService creates a new extraction service instance
func NewExtractService(documents *DocumentService, logger domain.Logger) *ExtractService {
	return &ExtractService{
		documents: documents,
		logger:    logger,
	}
}

// Extract validates the request, builds the output document page by page and
// writes it to req.OutputPath. Validation failures surface before anything is
// written; no partial output file is ever left at the destination. The
// progress callback runs synchronously on the calling goroutine, once per
// appended page.
func (s *ExtractService) Extract(req domain.ExtractionRequest, progress domain.ProgressFunc) (*domain.ExtractionSummary, error) {
	h, err := s.documents.acquire()
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePageSelection(req.Pages, h.pageCount); err != nil {
		return nil, err
	}
	if req.OutputPath == "" {
		return nil, &domain.ValidationError{Field: "output_path", Message: "output path is required"}
	}

	total := len(req.Pages)
	parts := make([][]byte, 0, total)
	for i, page := range req.Pages {
		rotation := domain.EffectiveRotation(h.rotations[page-1], req.Rotations[page])
		part, err := extractPage(h.ctx, page, rotation)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrCorrupted, page, err)
		}
		parts = append(parts, part)
		if progress != nil {
			progress(i+1, total)
		}
	}

	if dir := filepath.Dir(req.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryCreate, err)
		}
	}

	if err := s.writeOutput(parts, req.OutputPath); err != nil {
		return nil, err
	}

	s.logger.Info("extraction complete", "pages", total, "output", req.OutputPath)
	return &domain.ExtractionSummary{PagesWritten: total, OutputPath: req.OutputPath}, nil
}

// extractPage copies a single source page into a fresh context and stamps it
// with an absolute rotation. Setting the entry explicitly also preserves
// rotations the source inherited from its page tree, which page extraction
// would otherwise lose.
func extractPage(ctx *model.Context, page, rotation int) ([]byte, error) {
	ctxPage, err := pdfcpu.ExtractPages(ctx, []int{page}, false)
	if err != nil {
		return nil, err
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return nil, err
	}

	pageDict, _, _, err := ctxPage.PageDict(1, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("missing page dict")
	}
	pageDict["Rotate"] = types.Integer(rotation)

	var buf bytes.Buffer
	if err := api.WriteContext(ctxPage, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeOutput merges the per-page parts and replaces the destination file via
// a temp file in the same directory, so a failed write never leaves a torn
// document behind. An existing file at the destination is overwritten.
func (s *ExtractService) writeOutput(parts [][]byte, outputPath string) error {
	data := parts[0]
	if len(parts) > 1 {
		readers := make([]io.ReadSeeker, len(parts))
		for i, part := range parts {
			readers[i] = bytes.NewReader(part)
		}
		var merged bytes.Buffer
		if err := api.MergeRaw(readers, &merged, false, model.NewDefaultConfiguration()); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
		}
		data = merged.Bytes()
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".dpdf-*.pdf")
	if err != nil {
		return classifyWriteError(err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return classifyWriteError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return classifyWriteError(err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return classifyWriteError(err)
	}
	return nil
}

func classifyWriteError(err error) error {
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %v", domain.ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
}
