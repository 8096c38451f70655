package domain

import (
	"fmt"
	"time"
)

// DocumentInfo describes the currently loaded PDF document.
type DocumentInfo struct {
	Filepath  string            `json:"filepath"`
	Filename  string            `json:"filename"`
	PageCount int               `json:"page_count"`
	Rotations []int             `json:"rotations"` // original rotation per page, index 0 = page 1
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ExtractionRequest is an immutable description of a single extraction run.
// Pages are 1-indexed; order and duplicates are preserved in the output.
// Rotations maps page number to a clockwise rotation delta in degrees,
// relative to the page's original rotation. Missing keys mean delta 0.
type ExtractionRequest struct {
	Pages      []int       `json:"pages"`
	Rotations  map[int]int `json:"rotations,omitempty"`
	OutputPath string      `json:"output_path"`
}

// ExtractionSummary reports the result of a completed extraction.
type ExtractionSummary struct {
	PagesWritten int    `json:"pages_written"`
	OutputPath   string `json:"output_path"`
}

// ProgressFunc receives synchronous, in-order extraction progress.
// completed runs from 1 to total, once per appended page.
type ProgressFunc func(completed, total int)

// NormalizeRotation maps an arbitrary degree value into {0, 90, 180, 270}.
// Values outside [0,360) wrap; values that are not a multiple of 90 are
// rounded down to the nearest quarter turn.
func NormalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg - deg%90
}

// EffectiveRotation composes a page's original rotation with a caller-supplied
// delta. Both inputs are normalized first, so the result never depends on a
// previously computed rotation and recomputing is idempotent.
func EffectiveRotation(original, delta int) int {
	return (NormalizeRotation(original) + NormalizeRotation(delta)) % 360
}

// SuggestOutputFilename produces a deterministic output name (without
// extension) for a page selection. Advisory only; performs no I/O.
func SuggestOutputFilename(base string, pages []int) string {
	if base == "" {
		base = "extracted"
	}
	switch {
	case len(pages) == 0:
		return base + "_extracted"
	case len(pages) == 1:
		return fmt.Sprintf("%s_page_%d", base, pages[0])
	case isContiguous(pages):
		return fmt.Sprintf("%s_pages_%d-%d", base, pages[0], pages[len(pages)-1])
	default:
		return base + "_extracted"
	}
}

// isContiguous reports whether pages form a strictly ascending run n, n+1, ...
func isContiguous(pages []int) bool {
	for i := 1; i < len(pages); i++ {
		if pages[i] != pages[i-1]+1 {
			return false
		}
	}
	return true
}

// Project captures a saved extraction setup so a user can resume work later.
type Project struct {
	Name           string      `json:"name"`
	SourcePath     string      `json:"source_path"`
	Pages          []int       `json:"pages"`
	Rotations      map[int]int `json:"rotations,omitempty"`
	OutputDir      string      `json:"output_dir"`
	OutputFilename string      `json:"output_filename"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Validate checks that the project carries the fields required to restore it.
func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "project name is required"}
	}
	if err := ValidateFilename(p.Name); err != nil {
		return err
	}
	if p.SourcePath == "" {
		return &ValidationError{Field: "source_path", Message: "source path is required"}
	}
	return nil
}
