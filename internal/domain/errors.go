package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Domain errors
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrNotAPDF          = errors.New("file is not a PDF")
	ErrEncrypted        = errors.New("PDF is encrypted")
	ErrCorrupted        = errors.New("invalid or corrupted PDF file")
	ErrNotLoaded        = errors.New("document handle is closed")
	ErrNoDocumentLoaded = errors.New("no PDF loaded")
	ErrEmptySelection   = errors.New("page selection is empty")
	ErrPageOutOfRange   = errors.New("page number out of range")
	ErrDirectoryCreate  = errors.New("failed to create output directory")
	ErrPermissionDenied = errors.New("permission denied writing output")
	ErrWriteFailed      = errors.New("failed to write output file")
	ErrProjectNotFound  = errors.New("project not found")
)

// InvalidPagesError reports every requested page number that falls outside
// the loaded document. The request is rejected wholesale; nothing is clamped
// or silently dropped.
type InvalidPagesError struct {
	Pages     []int
	PageCount int
}

func (e *InvalidPagesError) Error() string {
	nrs := make([]string, len(e.Pages))
	for i, p := range e.Pages {
		nrs[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("invalid page numbers [%s] for document with %d pages",
		strings.Join(nrs, ", "), e.PageCount)
}

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
