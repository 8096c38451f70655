package config

import (
	"path/filepath"

	"github.com/dinethlive/dpdf-planner/internal/domain"
	"github.com/dinethlive/dpdf-planner/internal/repository"
	"github.com/dinethlive/dpdf-planner/internal/service"
	"github.com/dinethlive/dpdf-planner/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	DocumentService  *service.DocumentService
	ExtractService   *service.ExtractService
	ThumbnailService domain.ThumbnailService
	SettingsService  domain.SettingsService
	ProjectService   domain.ProjectService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	// Repositories
	settingsRepo := repository.NewFileSettingsRepository(cfg.GetDataDir(), appLogger)
	projectRepo := repository.NewFileProjectRepository(filepath.Join(cfg.GetDataDir(), "projects"), appLogger)

	// Services
	documentService := service.NewDocumentService(appLogger)
	extractService := service.NewExtractService(documentService, appLogger)
	thumbnailService := service.NewThumbnailService(cfg.GetThumbnailCacheDir(), cfg.GetMaxThumbnailWidth(), appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	projectService := service.NewProjectService(projectRepo, appLogger)

	return &Container{
		Config:           cfg,
		Logger:           appLogger,
		DocumentService:  documentService,
		ExtractService:   extractService,
		ThumbnailService: thumbnailService,
		SettingsService:  settingsService,
		ProjectService:   projectService,
	}
}
