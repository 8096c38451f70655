package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

const settingsFilename = "config.json"

// FileSettingsRepository persists user preferences as a JSON file in the
// application data directory.
type FileSettingsRepository struct {
	dir    string
	logger domain.Logger
}

// NewFileSettingsRepository creates a new file-backed settings repository
func NewFileSettingsRepository(dir string, logger domain.Logger) *FileSettingsRepository {
	return &FileSettingsRepository{dir: dir, logger: logger}
}

// Load reads the stored settings, merging them over the defaults so files
// written by older versions keep working. A missing or unreadable file
// silently yields the defaults.
func (r *FileSettingsRepository) Load() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(r.path())
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("settings file unreadable, using defaults", "path", r.path(), "error", err)
		}
		return settings, nil
	}
	if err := json.Unmarshal(data, settings); err != nil {
		r.logger.Warn("settings file corrupt, using defaults", "path", r.path(), "error", err)
		return domain.DefaultSettings(), nil
	}
	if settings.RecentFiles == nil {
		settings.RecentFiles = []string{}
	}
	return settings, nil
}

// Store writes the settings file, creating the data directory if needed.
func (r *FileSettingsRepository) Store(settings *domain.Settings) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(), data, 0o644)
}

func (r *FileSettingsRepository) path() string {
	return filepath.Join(r.dir, settingsFilename)
}
