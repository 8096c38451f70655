package domain

import "testing"

// TestNormalizeRotation tests snapping arbitrary degree values into the set
// of quarter turns {0, 90, 180, 270}.
func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		name string
		deg  int
		want int
	}{
		{name: "zero", deg: 0, want: 0},
		{name: "quarter turn", deg: 90, want: 90},
		{name: "full turn wraps", deg: 360, want: 0},
		{name: "beyond full turn", deg: 450, want: 90},
		{name: "negative wraps clockwise", deg: -90, want: 270},
		{name: "non multiple rounds down", deg: 91, want: 90},
		{name: "small positive rounds to zero", deg: 45, want: 0},
		{name: "large negative", deg: -450, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRotation(tt.deg); got != tt.want {
				t.Errorf("NormalizeRotation(%d) = %d, want %d", tt.deg, got, tt.want)
			}
		})
	}
}

// TestEffectiveRotation tests composing original rotation with a delta.
func TestEffectiveRotation(t *testing.T) {
	tests := []struct {
		name     string
		original int
		delta    int
		want     int
	}{
		{name: "no delta keeps original", original: 90, delta: 0, want: 90},
		{name: "quarter turn added", original: 0, delta: 90, want: 90},
		// 270 + 90 wraps back to 0
		{name: "wrap past full turn", original: 270, delta: 90, want: 0},
		{name: "half turn on rotated page", original: 90, delta: 180, want: 270},
		{name: "negative delta", original: 0, delta: -90, want: 270},
		{name: "delta rounds down before composing", original: 90, delta: 100, want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveRotation(tt.original, tt.delta); got != tt.want {
				t.Errorf("EffectiveRotation(%d, %d) = %d, want %d", tt.original, tt.delta, got, tt.want)
			}
			// Recomputing from the same pair must yield the same result.
			if again := EffectiveRotation(tt.original, tt.delta); again != tt.want {
				t.Errorf("EffectiveRotation not idempotent: second call = %d, want %d", again, tt.want)
			}
		})
	}
}

// TestSuggestOutputFilename tests the advisory output name for the three
// selection shapes: single page, contiguous range, arbitrary selection.
func TestSuggestOutputFilename(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		pages []int
		want  string
	}{
		{name: "single page", base: "report", pages: []int{3}, want: "report_page_3"},
		{name: "contiguous range", base: "report", pages: []int{2, 3, 4, 5}, want: "report_pages_2-5"},
		{name: "disjoint selection", base: "report", pages: []int{1, 3, 7}, want: "report_extracted"},
		{name: "descending order is not contiguous", base: "report", pages: []int{5, 4, 3}, want: "report_extracted"},
		{name: "duplicates are not contiguous", base: "report", pages: []int{2, 2, 3}, want: "report_extracted"},
		{name: "empty base falls back", base: "", pages: []int{1}, want: "extracted_page_1"},
		{name: "no pages", base: "report", pages: nil, want: "report_extracted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestOutputFilename(tt.base, tt.pages); got != tt.want {
				t.Errorf("SuggestOutputFilename(%q, %v) = %q, want %q", tt.base, tt.pages, got, tt.want)
			}
		})
	}
}

// TestProject_Validate tests required-field validation for saved projects.
func TestProject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{
			name:    "valid project",
			project: Project{Name: "thesis chapters", SourcePath: "/tmp/thesis.pdf", Pages: []int{1, 2}},
			wantErr: false,
		},
		{
			name:    "missing name",
			project: Project{SourcePath: "/tmp/thesis.pdf"},
			wantErr: true,
		},
		{
			name:    "name with invalid characters",
			project: Project{Name: "bad/name", SourcePath: "/tmp/thesis.pdf"},
			wantErr: true,
		},
		{
			name:    "missing source path",
			project: Project{Name: "thesis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestSettings_AddRecentFile tests recent-list ordering, deduplication and
// trimming.
func TestSettings_AddRecentFile(t *testing.T) {
	s := DefaultSettings()
	s.MaxRecentFiles = 3

	s.AddRecentFile("/a.pdf")
	s.AddRecentFile("/b.pdf")
	s.AddRecentFile("/c.pdf")
	s.AddRecentFile("/b.pdf") // moves to front, no duplicate
	s.AddRecentFile("/d.pdf") // evicts the oldest

	want := []string{"/d.pdf", "/b.pdf", "/c.pdf"}
	if len(s.RecentFiles) != len(want) {
		t.Fatalf("RecentFiles = %v, want %v", s.RecentFiles, want)
	}
	for i, f := range want {
		if s.RecentFiles[i] != f {
			t.Errorf("RecentFiles[%d] = %q, want %q", i, s.RecentFiles[i], f)
		}
	}
}
