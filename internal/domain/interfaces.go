package domain

// DocumentService owns the single active document handle.
type DocumentService interface {
	Load(path string) (*DocumentInfo, error)
	Info() (*DocumentInfo, error)
	PageCount() (int, error)
	OriginalRotation(page int) (int, error)
	IsLoaded() bool
	Close() error
}

// Extractor runs the page-selection-to-extraction pipeline against the
// currently loaded document.
type Extractor interface {
	Extract(req ExtractionRequest, progress ProgressFunc) (*ExtractionSummary, error)
}

// ThumbnailService renders PDF pages as images for the UI. The extraction
// pipeline never consumes it.
type ThumbnailService interface {
	Render(path string, page, width int) ([]byte, error)
	ClearCache(path string) error
}

// SettingsService exposes persisted user preferences.
type SettingsService interface {
	Get() (*Settings, error)
	Update(settings *Settings) error
	RecordInputPath(path string) error
	RecordOutputDir(dir string) error
}

// ProjectService persists and restores extraction setups.
type ProjectService interface {
	Save(project *Project) (string, error)
	Load(name string) (*Project, error)
	List() ([]string, error)
}

// SettingsRepository persists Settings.
type SettingsRepository interface {
	Load() (*Settings, error)
	Store(settings *Settings) error
}

// ProjectRepository persists Projects by name.
type ProjectRepository interface {
	Store(project *Project) (string, error)
	Retrieve(name string) (*Project, error)
	Names() ([]string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetDataDir() string
	GetThumbnailCacheDir() string
	GetMaxThumbnailWidth() int
	GetLogLevel() string
	GetAllowedOrigins() []string
}
