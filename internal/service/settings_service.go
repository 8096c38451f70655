package service

import (
	"os"
	"path/filepath"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

type settingsService struct {
	settingsRepo domain.SettingsRepository
	logger       domain.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo domain.SettingsRepository, logger domain.Logger) domain.SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retrieves the persisted settings with directory fallbacks applied:
// a vanished last input directory falls back to the user's home directory,
// a missing last output directory falls back to the default output directory.
func (s *settingsService) Get() (*domain.Settings, error) {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return nil, err
	}
	if settings.LastInputDir == "" || !dirExists(settings.LastInputDir) {
		if home, err := os.UserHomeDir(); err == nil {
			settings.LastInputDir = home
		}
	}
	if settings.LastOutputDir == "" || !dirExists(settings.LastOutputDir) {
		settings.LastOutputDir = s.defaultOutputDir(settings.DefaultOutputSubdir)
	}
	return settings, nil
}

// Update persists the given settings.
func (s *settingsService) Update(settings *domain.Settings) error {
	return s.settingsRepo.Store(settings)
}

// RecordInputPath stores the directory of a just-opened file as the last
// input directory and records the file in the recent list.
func (s *settingsService) RecordInputPath(path string) error {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dirExists(dir) {
		settings.LastInputDir = dir
	}
	settings.AddRecentFile(path)
	return s.settingsRepo.Store(settings)
}

// RecordOutputDir stores the directory of a just-written output file.
func (s *settingsService) RecordOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return err
	}
	settings.LastOutputDir = dir
	return s.settingsRepo.Store(settings)
}

// defaultOutputDir resolves Documents/<subdir>, creating it on first use.
func (s *settingsService) defaultOutputDir(subdir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	documents := filepath.Join(home, "Documents")
	if subdir == "" {
		return documents
	}
	path := filepath.Join(documents, subdir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return documents
	}
	return path
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
