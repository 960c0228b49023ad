package ports

// Scaffolder creates a fresh project directory from static templates.
//
//go:generate go run go.uber.org/mock/mockgen -source=scaffolder.go -destination=mocks/mock_scaffolder.go -package=mocks
type Scaffolder interface {
	// Create materializes a new project named name under dir, pinned to
	// the given resolved engine version.
	Create(dir, name, engineVersion string) error
}
