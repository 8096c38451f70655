package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// FileProjectRepository persists extraction projects as individual JSON files
// in a projects directory, one file per project name.
type FileProjectRepository struct {
	dir    string
	logger domain.Logger
}

// NewFileProjectRepository creates a new file-backed project repository
func NewFileProjectRepository(dir string, logger domain.Logger) *FileProjectRepository {
	return &FileProjectRepository{dir: dir, logger: logger}
}

// Store writes the project file and returns its path.
func (r *FileProjectRepository) Store(project *domain.Project) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := r.path(project.Name)
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Retrieve loads a project by name.
func (r *FileProjectRepository) Retrieve(name string) (*domain.Project, error) {
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	var project domain.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Names lists stored project names, sorted.
func (r *FileProjectRepository) Names() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (r *FileProjectRepository) path(name string) string {
	return filepath.Join(r.dir, domain.SanitizeFilename(name)+".json")
}
