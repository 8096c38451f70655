package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dinethlive/dpdf-planner/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultThumbnailWidth = 200

// ThumbnailService renders PDF pages as PNG images for the UI, with a disk
// cache keyed by source file, modification time, page and width. It is a
// collaborator of the presentation layer only; the extraction pipeline never
// calls it.
type ThumbnailService struct {
	cacheDir string
	maxWidth int
	logger   domain.Logger
}

// NewThumbnailService creates a new thumbnail service instance
func NewThumbnailService(cacheDir string, maxWidth int, logger domain.Logger) *ThumbnailService {
	return &ThumbnailService{
		cacheDir: cacheDir,
		maxWidth: maxWidth,
		logger:   logger,
	}
}

// Render returns a PNG rendering of the given page (1-indexed) scaled to the
// requested width.
func (s *ThumbnailService) Render(path string, page, width int) ([]byte, error) {
	if width <= 0 {
		width = defaultThumbnailWidth
	}
	if s.maxWidth > 0 && width > s.maxWidth {
		width = s.maxWidth
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	cachePath := s.cachePath(path, info.ModTime().UnixNano(), page, width)
	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			return data, nil
		}
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return nil, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, page, doc.NumPage())
	}

	// go-fitz pages are 0-indexed.
	bounds, err := doc.Bound(page - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to measure page %d: %w", page, err)
	}
	dpi := 72.0
	if bounds.Dx() > 0 {
		dpi = 72.0 * float64(width) / float64(bounds.Dx())
	}

	data, err := doc.ImagePNG(page-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page, err)
	}

	if cachePath != "" {
		if err := os.MkdirAll(s.cacheDir, 0o755); err == nil {
			if err := os.WriteFile(cachePath, data, 0o644); err != nil {
				s.logger.Debug("thumbnail cache write failed", "path", cachePath, "error", err)
			}
		}
	}
	return data, nil
}

// ClearCache drops cached thumbnails for one source file, or for all files
// when path is empty.
func (s *ThumbnailService) ClearCache(path string) error {
	if s.cacheDir == "" {
		return nil
	}
	pattern := "*.png"
	if path != "" {
		pattern = sourceKey(path) + "-*.png"
	}
	matches, err := filepath.Glob(filepath.Join(s.cacheDir, pattern))
	if err != nil {
		return err
	}
	for _, m := range matches {
		os.Remove(m)
	}
	return nil
}

// cachePath builds the cache file location for a rendering, or "" when
// caching is disabled.
func (s *ThumbnailService) cachePath(path string, modTime int64, page, width int) string {
	if s.cacheDir == "" {
		return ""
	}
	name := fmt.Sprintf("%s-%d-%d-%d.png", sourceKey(path), modTime, page, width)
	return filepath.Join(s.cacheDir, name)
}

// sourceKey derives a stable filename-safe key for a source path.
func sourceKey(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:8])
}
