package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Characters not allowed in Windows filenames.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Reserved Windows device names; a filename matching one of these (before any
// extension) is rejected regardless of case.
var reservedFilenames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

const maxFilenameLength = 200

// ValidatePageSelection checks a requested page list against a document's
// page count. An empty list yields ErrEmptySelection; any out-of-range page
// yields an InvalidPagesError carrying the complete offending list.
func ValidatePageSelection(pages []int, pageCount int) error {
	if len(pages) == 0 {
		return ErrEmptySelection
	}
	var invalid []int
	for _, p := range pages {
		if p < 1 || p > pageCount {
			invalid = append(invalid, p)
		}
	}
	if len(invalid) > 0 {
		return &InvalidPagesError{Pages: invalid, PageCount: pageCount}
	}
	return nil
}

// ValidateFilename checks a bare filename (no path, no extension) for
// filesystem compatibility, including Windows rules since output files are
// commonly shared across platforms.
func ValidateFilename(name string) error {
	if name == "" {
		return &ValidationError{Field: "filename", Message: "filename cannot be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "filename", Message: "filename cannot be only whitespace"}
	}
	if invalidFilenameChars.MatchString(name) {
		return &ValidationError{Field: "filename", Message: `filename contains invalid characters: < > : " / \ | ? *`}
	}
	stem := strings.ToUpper(strings.SplitN(name, ".", 2)[0])
	if _, reserved := reservedFilenames[stem]; reserved {
		return &ValidationError{Field: "filename", Message: fmt.Sprintf("%q is a reserved filename", name)}
	}
	if len(name) > maxFilenameLength {
		return &ValidationError{Field: "filename", Message: fmt.Sprintf("filename is too long (max %d characters)", maxFilenameLength)}
	}
	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return &ValidationError{Field: "filename", Message: "filename cannot start or end with spaces"}
	}
	if strings.HasSuffix(name, ".") {
		return &ValidationError{Field: "filename", Message: "filename cannot end with a period"}
	}
	return nil
}

// SanitizeFilename replaces invalid characters and trims problematic edges,
// falling back to a default when nothing usable remains.
func SanitizeFilename(name string) string {
	sanitized := invalidFilenameChars.ReplaceAllString(name, "_")
	sanitized = strings.Trim(sanitized, " .")
	if sanitized == "" {
		return "extracted_pages"
	}
	if len(sanitized) > maxFilenameLength {
		sanitized = sanitized[:maxFilenameLength]
	}
	return sanitized
}

// ValidateOutputPath checks the destination for an extraction. The directory
// may be missing (it is created during extraction) but its parent must exist.
func ValidateOutputPath(outputPath string) error {
	if outputPath == "" {
		return &ValidationError{Field: "output_path", Message: "output path is required"}
	}
	dir := filepath.Dir(outputPath)
	if dir != "." {
		if info, err := os.Stat(dir); err == nil {
			if !info.IsDir() {
				return &ValidationError{Field: "output_path", Message: fmt.Sprintf("path is not a directory: %s", dir)}
			}
		} else {
			parent := filepath.Dir(dir)
			if parent != "." && parent != dir {
				if _, err := os.Stat(parent); err != nil {
					return &ValidationError{Field: "output_path", Message: fmt.Sprintf("parent directory does not exist: %s", parent)}
				}
			}
		}
	}
	name := filepath.Base(outputPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return ValidateFilename(name)
}

// ValidatePDFPath checks that a path points to a readable .pdf file.
func ValidatePDFPath(path string) error {
	if path == "" {
		return &ValidationError{Field: "path", Message: "no file selected"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Field: "path", Message: "file does not exist"}
	}
	if info.IsDir() {
		return &ValidationError{Field: "path", Message: "path is not a file"}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &ValidationError{Field: "path", Message: "file is not a PDF (must have .pdf extension)"}
	}
	return nil
}
