package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidatePageSelection tests wholesale rejection of bad selections and
// complete reporting of offending pages.
func TestValidatePageSelection(t *testing.T) {
	tests := []struct {
		name        string
		pages       []int
		pageCount   int
		wantErr     error
		wantInvalid []int
	}{
		{name: "valid range", pages: []int{1, 2, 3}, pageCount: 3},
		{name: "valid with duplicates and arbitrary order", pages: []int{3, 1, 3}, pageCount: 3},
		{name: "empty selection", pages: nil, pageCount: 3, wantErr: ErrEmptySelection},
		{name: "page zero", pages: []int{0, 1}, pageCount: 3, wantInvalid: []int{0}},
		{name: "beyond last page", pages: []int{1, 4}, pageCount: 3, wantInvalid: []int{4}},
		{name: "every offender reported", pages: []int{0, 2, 4, 9}, pageCount: 3, wantInvalid: []int{0, 4, 9}},
		{name: "negative page", pages: []int{-1}, pageCount: 3, wantInvalid: []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageSelection(tt.pages, tt.pageCount)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantInvalid != nil {
				var invalid *InvalidPagesError
				if !errors.As(err, &invalid) {
					t.Fatalf("error = %v, want InvalidPagesError", err)
				}
				if len(invalid.Pages) != len(tt.wantInvalid) {
					t.Fatalf("invalid pages = %v, want %v", invalid.Pages, tt.wantInvalid)
				}
				for i, p := range tt.wantInvalid {
					if invalid.Pages[i] != p {
						t.Errorf("invalid pages[%d] = %d, want %d", i, invalid.Pages[i], p)
					}
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestValidateFilename tests filesystem-compatibility rules for bare names.
func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "simple name", filename: "report_pages_2-5", wantErr: false},
		{name: "spaces inside are fine", filename: "my report", wantErr: false},
		{name: "empty", filename: "", wantErr: true},
		{name: "only whitespace", filename: "   ", wantErr: true},
		{name: "invalid character slash", filename: "a/b", wantErr: true},
		{name: "invalid character colon", filename: "a:b", wantErr: true},
		{name: "reserved device name", filename: "CON", wantErr: true},
		{name: "reserved device name lowercase", filename: "nul", wantErr: true},
		{name: "leading space", filename: " report", wantErr: true},
		{name: "trailing period", filename: "report.", wantErr: true},
		{name: "too long", filename: strings.Repeat("a", 210), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

// TestSanitizeFilename tests replacement of invalid characters and fallbacks.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean name untouched", in: "report", want: "report"},
		{name: "invalid characters replaced", in: `a<b>c:d`, want: "a_b_c_d"},
		{name: "edges trimmed", in: " report. ", want: "report"},
		{name: "nothing usable", in: `???`, want: "___"},
		{name: "empty input", in: "", want: "extracted_pages"},
		{name: "only trimmed characters", in: " .. ", want: "extracted_pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestValidatePDFPath tests the readable-.pdf gate.
func TestValidatePDFPath(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "existing pdf", path: pdfPath, wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "nope.pdf"), wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "wrong extension", path: txtPath, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDFPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePDFPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// TestValidateOutputPath tests destination checks without requiring the
// directory itself to exist.
func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "existing directory", path: filepath.Join(dir, "out.pdf"), wantErr: false},
		{name: "missing directory with existing parent", path: filepath.Join(dir, "new", "out.pdf"), wantErr: false},
		{name: "missing parent", path: filepath.Join(dir, "a", "b", "out.pdf"), wantErr: true},
		{name: "empty", path: "", wantErr: true},
		{name: "reserved filename", path: filepath.Join(dir, "CON.pdf"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
