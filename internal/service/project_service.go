package service

import (
	"time"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

type projectService struct {
	projectRepo domain.ProjectRepository
	logger      domain.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo domain.ProjectRepository, logger domain.Logger) domain.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Save validates and persists a project, returning the stored file path.
func (s *projectService) Save(project *domain.Project) (string, error) {
	if err := project.Validate(); err != nil {
		return "", err
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	path, err := s.projectRepo.Store(project)
	if err != nil {
		return "", err
	}
	s.logger.Info("project saved", "name", project.Name, "path", path)
	return path, nil
}

// Load retrieves a project by name.
func (s *projectService) Load(name string) (*domain.Project, error) {
	return s.projectRepo.Retrieve(name)
}

// List returns the names of all stored projects.
func (s *projectService) List() ([]string, error) {
	return s.projectRepo.Names()
}
