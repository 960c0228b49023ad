package ports

import "context"

// Resolver turns a requested engine version into a concrete release tag.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve resolves "latest" through the registry, returns any other
	// version unchanged when validate is false, and otherwise checks it
	// against the full release catalog.
	//
	// On a catalog miss it prints the complete user-facing diagnostic
	// (invalid version plus a truncated suggestion list) and returns
	// domain.ErrVersionNotFound, which callers must treat as already
	// reported.
	Resolve(ctx context.Context, requested string, validate bool) (string, error)
}
