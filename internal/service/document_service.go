package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dinethlive/dpdf-planner/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// documentHandle wraps an opened PDF. Page count and per-page original
// rotations are captured once at load time and never mutated afterwards; the
// extraction pipeline composes rotation deltas against these immutable values
// on every run, so repeated extractions can never compound.
type documentHandle struct {
	ctx       *model.Context
	filepath  string
	pageCount int
	rotations []int
	metadata  map[string]string
}

// DocumentService owns the single active document handle. Loading a new
// document replaces the previous one; the application never edits multiple
// documents concurrently.
type DocumentService struct {
	mu     sync.Mutex
	handle *documentHandle
	logger domain.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(logger domain.Logger) *DocumentService {
	return &DocumentService{logger: logger}
}

// Load opens a PDF file and captures its page count and original rotations.
// Failures are classified so callers can present a precise message: missing
// file, wrong file type, password-protected, or unparseable.
func (s *DocumentService) Load(path string) (*domain.DocumentInfo, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAPDF, filepath.Base(path))
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, classifyReadError(err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, classifyReadError(err)
	}

	handle := &documentHandle{
		ctx:       ctx,
		filepath:  path,
		pageCount: ctx.PageCount,
		rotations: readRotations(ctx),
		metadata:  readMetadata(ctx),
	}

	s.mu.Lock()
	s.handle = handle
	s.mu.Unlock()

	s.logger.Info("PDF loaded", "path", path, "pages", handle.pageCount)
	return handle.info(), nil
}

// Info returns a description of the currently loaded document.
func (s *DocumentService) Info() (*domain.DocumentInfo, error) {
	h, err := s.acquire()
	if err != nil {
		return nil, err
	}
	return h.info(), nil
}

// PageCount returns the total number of pages in the loaded document.
func (s *DocumentService) PageCount() (int, error) {
	h, err := s.acquire()
	if err != nil {
		return 0, err
	}
	return h.pageCount, nil
}

// OriginalRotation returns the rotation a page carried at load time.
func (s *DocumentService) OriginalRotation(page int) (int, error) {
	h, err := s.acquire()
	if err != nil {
		return 0, err
	}
	if page < 1 || page > h.pageCount {
		return 0, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, page, h.pageCount)
	}
	return h.rotations[page-1], nil
}

// IsLoaded reports whether a document is currently open.
func (s *DocumentService) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil
}

// Close releases the current handle. Subsequent operations fail until a new
// document is loaded. Closing with no document open is a no-op.
func (s *DocumentService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != nil {
		s.logger.Debug("closing document", "path", s.handle.filepath)
		s.handle.ctx = nil
		s.handle = nil
	}
	return nil
}

// acquire returns the active handle, failing when none is loaded.
func (s *DocumentService) acquire() (*documentHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == nil {
		return nil, domain.ErrNoDocumentLoaded
	}
	if s.handle.ctx == nil {
		return nil, domain.ErrNotLoaded
	}
	return s.handle, nil
}

func (h *documentHandle) info() *domain.DocumentInfo {
	rotations := make([]int, len(h.rotations))
	copy(rotations, h.rotations)
	return &domain.DocumentInfo{
		Filepath:  h.filepath,
		Filename:  filepath.Base(h.filepath),
		PageCount: h.pageCount,
		Rotations: rotations,
		Metadata:  h.metadata,
	}
}

// readRotations captures every page's rotation, including values inherited
// from the page tree. Pages without a usable entry default to 0.
func readRotations(ctx *model.Context) []int {
	rotations := make([]int, ctx.PageCount)
	for page := 1; page <= ctx.PageCount; page++ {
		_, _, inh, err := ctx.PageDict(page, false)
		if err != nil || inh == nil {
			continue
		}
		rotations[page-1] = domain.NormalizeRotation(inh.Rotate)
	}
	return rotations
}

// readMetadata resolves the document info dictionary, best effort.
func readMetadata(ctx *model.Context) map[string]string {
	meta := map[string]string{}
	if ctx.Info == nil {
		return meta
	}
	dict, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil || dict == nil {
		return meta
	}
	for entry, key := range map[string]string{
		"Title":   "title",
		"Author":  "author",
		"Subject": "subject",
		"Creator": "creator",
	} {
		if value := dict.StringEntry(entry); value != nil && *value != "" {
			meta[key] = *value
		}
	}
	return meta
}

// classifyReadError separates password-protected documents from everything
// else the parser rejects.
func classifyReadError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypt") {
		return fmt.Errorf("%w: %v", domain.ErrEncrypted, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrCorrupted, err)
}
