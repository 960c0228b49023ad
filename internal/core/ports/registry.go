// Package ports defines the core interfaces for the application.
package ports

import "context"

// Registry lists engine releases from the remote release registry.
//
// Both calls issue a single outbound request with no caching and no retry: a
// failed request is a failed resolution attempt.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// LatestTag returns the newest release tag, with any leading "v" stripped.
	LatestTag(ctx context.Context) (string, error)

	// Tags returns every release tag in the registry's native order,
	// each with any leading "v" stripped.
	Tags(ctx context.Context) ([]string, error)
}
