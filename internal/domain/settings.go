package domain

// Settings holds persisted user preferences.
type Settings struct {
	LastInputDir        string   `json:"last_input_dir"`
	LastOutputDir       string   `json:"last_output_dir"`
	RecentFiles         []string `json:"recent_files"`
	Theme               string   `json:"theme"`
	MaxRecentFiles      int      `json:"max_recent_files"`
	DefaultOutputSubdir string   `json:"default_output_subdir"`
}

// DefaultSettings returns the baseline preferences used when no settings file
// exists yet or when a stored file is unreadable.
func DefaultSettings() *Settings {
	return &Settings{
		RecentFiles:         []string{},
		Theme:               "dark",
		MaxRecentFiles:      5,
		DefaultOutputSubdir: "Extracted PDFs",
	}
}

// AddRecentFile records a file at the front of the recent list, deduplicating
// and trimming to MaxRecentFiles.
func (s *Settings) AddRecentFile(path string) {
	if path == "" {
		return
	}
	max := s.MaxRecentFiles
	if max <= 0 {
		max = 5
	}
	recent := make([]string, 0, max)
	recent = append(recent, path)
	for _, f := range s.RecentFiles {
		if f == path {
			continue
		}
		recent = append(recent, f)
		if len(recent) == max {
			break
		}
	}
	s.RecentFiles = recent
}
