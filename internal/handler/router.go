package handler

import (
	"net/http"

	"github.com/dinethlive/dpdf-planner/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogging(container.Logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"dpdf-planner"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Initialize handlers
	documentHandler := NewDocumentHandler(container.DocumentService, container.SettingsService, container.Logger)
	extractHandler := NewExtractHandler(container.ExtractService, container.SettingsService, container.Logger)
	thumbnailHandler := NewThumbnailHandler(container.DocumentService, container.ThumbnailService, container.Logger)
	settingsHandler := NewSettingsHandler(container.SettingsService, container.Logger)
	projectHandler := NewProjectHandler(container.ProjectService, container.Logger)

	// Document routes
	api.HandleFunc("/document", documentHandler.OpenDocument).Methods("POST")
	api.HandleFunc("/document", documentHandler.GetDocument).Methods("GET")
	api.HandleFunc("/document", documentHandler.CloseDocument).Methods("DELETE")
	api.HandleFunc("/document/suggested-name", documentHandler.SuggestName).Methods("GET")
	api.HandleFunc("/document/pages/{page:[0-9]+}/thumbnail", thumbnailHandler.GetThumbnail).Methods("GET")

	// Extraction routes
	api.HandleFunc("/document/extract", extractHandler.Extract).Methods("POST")
	api.HandleFunc("/document/extract/progress", extractHandler.Progress).Methods("GET")

	// Settings routes
	api.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods("PUT")
	api.HandleFunc("/reveal", settingsHandler.Reveal).Methods("POST")

	// Project routes
	api.HandleFunc("/projects", projectHandler.ListProjects).Methods("GET")
	api.HandleFunc("/projects", projectHandler.SaveProject).Methods("POST")
	api.HandleFunc("/projects/{name}", projectHandler.GetProject).Methods("GET")

	// Configure CORS for the local UI
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
