// Package resolver turns requested engine versions into concrete release tags.
package resolver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

// maxSuggestions caps the number of catalog entries shown when a requested
// version does not exist.
const maxSuggestions = 10

// Resolver implements ports.Resolver against a release registry.
type Resolver struct {
	registry ports.Registry
	logger   ports.Logger
}

// New creates a new Resolver.
func New(registry ports.Registry, logger ports.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		logger:   logger,
	}
}

// Resolve resolves requested to a concrete release tag.
//
// "latest" is resolved through the registry regardless of validate. Any
// other version is returned unchanged when validate is false; otherwise it
// must exact-match an entry of the full catalog. Matching is case-sensitive
// string equality, by design: tags are opaque, there are no range or
// prerelease semantics here.
func (r *Resolver) Resolve(ctx context.Context, requested string, validate bool) (string, error) {
	if requested == domain.Latest {
		tag, err := r.registry.LatestTag(ctx)
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve latest engine version")
		}
		return tag, nil
	}

	if !validate {
		return requested, nil
	}

	tags, err := r.registry.Tags(ctx)
	if err != nil {
		return "", zerr.Wrap(err, "failed to fetch release catalog")
	}

	if slices.Contains(tags, requested) {
		return requested, nil
	}

	// Full user-facing diagnostic is emitted here; the returned error is a
	// marker only and must not trigger further printing upstream.
	r.logger.Error(zerr.New(renderNotFound(requested, tags)))
	return "", domain.ErrVersionNotFound
}

// renderNotFound formats the invalid version together with a suggestion
// list: the first maxSuggestions catalog entries in registry order, plus a
// count of whatever was omitted.
func renderNotFound(requested string, tags []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "engine version %q does not match any release", requested)
	b.WriteString("\nAvailable versions:")

	shown := len(tags)
	if shown > maxSuggestions {
		shown = maxSuggestions
	}
	for _, tag := range tags[:shown] {
		b.WriteString("\n  " + tag)
	}
	if rest := len(tags) - shown; rest > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more", rest)
	}
	return b.String()
}
