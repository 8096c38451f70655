package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dinethlive/dpdf-planner/internal/domain"

	"github.com/gorilla/mux"
)

// ProjectHandler handles project persistence requests
type ProjectHandler struct {
	projectService domain.ProjectService
	logger         domain.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService domain.ProjectService, logger domain.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects returns the names of stored projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	names, err := h.projectService.List()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"projects": names})
}

// SaveProject stores a project under its name.
func (h *ProjectHandler) SaveProject(w http.ResponseWriter, r *http.Request) {
	var project domain.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	path, err := h.projectService.Save(&project)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": project.Name, "path": path})
}

// GetProject loads a project by name.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.Load(mux.Vars(r)["name"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}
