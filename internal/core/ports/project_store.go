package ports

import "github.com/lume-engine/cli/internal/core/domain"

// ProjectStore reads and rewrites the project configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_store.go -destination=mocks/mock_project_store.go -package=mocks
type ProjectStore interface {
	// Load reads lume.zon from dir. A missing file is
	// domain.ErrProjectNotFound; missing fields are empty strings.
	Load(dir string) (*domain.Project, error)

	// SetEngineVersion replaces only the quoted engine_version value in
	// dir's lume.zon, preserving every other byte verbatim. A missing
	// field is domain.ErrFieldNotFound and leaves the file untouched.
	SetEngineVersion(dir, version string) error
}
