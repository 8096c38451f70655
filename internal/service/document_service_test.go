package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// TestDocumentService_Load tests load-failure classification and successful
// capture of page count and original rotations.
func TestDocumentService_Load(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s := NewDocumentService(testLogger{})
		_, err := s.Load(filepath.Join(t.TempDir(), "nope.pdf"))
		if !errors.Is(err, domain.ErrFileNotFound) {
			t.Errorf("error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
		s := NewDocumentService(testLogger{})
		if _, err := s.Load(path); !errors.Is(err, domain.ErrNotAPDF) {
			t.Errorf("error = %v, want ErrNotAPDF", err)
		}
	})

	t.Run("garbage content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.pdf")
		if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
		s := NewDocumentService(testLogger{})
		if _, err := s.Load(path); !errors.Is(err, domain.ErrCorrupted) {
			t.Errorf("error = %v, want ErrCorrupted", err)
		}
	})

	t.Run("valid document", func(t *testing.T) {
		// Last page omits the Rotate entry to cover the default.
		path := writeTestPDF(t, []int{0, 90, 270, -1})
		s := NewDocumentService(testLogger{})

		info, err := s.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if info.PageCount != 4 {
			t.Errorf("PageCount = %d, want 4", info.PageCount)
		}
		want := []int{0, 90, 270, 0}
		for i, w := range want {
			if info.Rotations[i] != w {
				t.Errorf("Rotations[%d] = %d, want %d", i, info.Rotations[i], w)
			}
		}
	})
}

// TestDocumentService_OriginalRotation tests rotation lookup and range checks.
func TestDocumentService_OriginalRotation(t *testing.T) {
	path := writeTestPDF(t, []int{0, 90, 270})
	s := NewDocumentService(testLogger{})
	if _, err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name    string
		page    int
		want    int
		wantErr error
	}{
		{name: "first page", page: 1, want: 0},
		{name: "rotated page", page: 2, want: 90},
		{name: "last page", page: 3, want: 270},
		{name: "page zero", page: 0, wantErr: domain.ErrPageOutOfRange},
		{name: "beyond last", page: 4, wantErr: domain.ErrPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.OriginalRotation(tt.page)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OriginalRotation(%d) error = %v", tt.page, err)
			}
			if got != tt.want {
				t.Errorf("OriginalRotation(%d) = %d, want %d", tt.page, got, tt.want)
			}
		})
	}
}

// TestDocumentService_Lifecycle tests the load/close state machine.
func TestDocumentService_Lifecycle(t *testing.T) {
	s := NewDocumentService(testLogger{})

	if s.IsLoaded() {
		t.Error("IsLoaded() = true before any load")
	}
	if _, err := s.Info(); !errors.Is(err, domain.ErrNoDocumentLoaded) {
		t.Errorf("Info() error = %v, want ErrNoDocumentLoaded", err)
	}

	path := writeTestPDF(t, []int{0, 0})
	if _, err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.IsLoaded() {
		t.Error("IsLoaded() = false after load")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if s.IsLoaded() {
		t.Error("IsLoaded() = true after close")
	}
	if _, err := s.PageCount(); !errors.Is(err, domain.ErrNoDocumentLoaded) {
		t.Errorf("PageCount() after close error = %v, want ErrNoDocumentLoaded", err)
	}

	// Close with nothing loaded is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
