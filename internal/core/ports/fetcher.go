package ports

import "context"

// HashFetcher obtains the content hash pinning a specific engine source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type HashFetcher interface {
	// FetchHash runs the external fetch tool against the given source URL
	// and returns its trimmed stdout. The hash is never empty and carries
	// no surrounding whitespace.
	FetchHash(ctx context.Context, sourceURL string) (string, error)
}
