package ports

import "context"

// Synthesizer writes the generated bootstrap descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=bootstrap.go -destination=mocks/mock_bootstrap.go -package=mocks
type Synthesizer interface {
	// Synthesize (re)creates the bootstrap directory and writes the
	// dependency descriptor pinning (sourceURL, hash) plus the static
	// driver descriptor. A pre-existing directory is not an error.
	Synthesize(dir, sourceURL, hash string) error

	// Clean removes the bootstrap directory. Removing a missing directory
	// is not an error.
	Clean(dir string) error
}

// Runner invokes the external build tool against a bootstrap directory.
type Runner interface {
	// Run executes the generator build step inside dir, forwarding the
	// release flag and any passthrough arguments. It blocks until the
	// child exits and returns domain.ErrGeneratorFailed with the literal
	// exit code on a non-zero exit.
	Run(ctx context.Context, dir string, release bool, passthrough []string) error
}
