// Package app implements the application layer for lume.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	settings   domain.Settings
	registry   ports.Registry
	resolver   ports.Resolver
	fetcher    ports.HashFetcher
	synth      ports.Synthesizer
	runner     ports.Runner
	projects   ports.ProjectStore
	scaffolder ports.Scaffolder
	logger     ports.Logger
	out        io.Writer
}

// New creates a new App instance.
func New(
	settings domain.Settings,
	registry ports.Registry,
	resolver ports.Resolver,
	fetcher ports.HashFetcher,
	synth ports.Synthesizer,
	runner ports.Runner,
	projects ports.ProjectStore,
	scaffolder ports.Scaffolder,
	logger ports.Logger,
) *App {
	return &App{
		settings:   settings,
		registry:   registry,
		resolver:   resolver,
		fetcher:    fetcher,
		synth:      synth,
		runner:     runner,
		projects:   projects,
		scaffolder: scaffolder,
		logger:     logger,
		out:        os.Stdout,
	}
}

// WithOutput redirects plain command output (version listings).
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Build resolves the project's pinned engine version, synthesizes the
// bootstrap package, and runs the engine's generator.
//
// The pinned version is resolved without catalog validation: a build must
// not pay for a full registry listing on every run. A stale or misspelled
// pin surfaces as a fetch failure instead, which gets a remediation hint.
func (a *App) Build(ctx context.Context, release bool, passthrough []string) error {
	proj, err := a.projects.Load(".")
	if err != nil {
		return err
	}

	requested := proj.EngineVersion
	if requested == "" {
		requested = domain.Latest
	}

	version, err := a.resolver.Resolve(ctx, requested, false)
	if err != nil {
		return err
	}

	sourceURL := a.settings.SourceURL(version)

	hash, err := a.fetcher.FetchHash(ctx, sourceURL)
	if err != nil {
		if errors.Is(err, domain.ErrFetchFailed) {
			a.logger.Warn(fmt.Sprintf("engine version %q may not exist; run 'lume versions' to list available releases", version))
		}
		return err
	}

	if err := a.synth.Synthesize(domain.BootstrapDirName, sourceURL, hash); err != nil {
		return err
	}

	return a.runner.Run(ctx, domain.BootstrapDirName, release, passthrough)
}

// Update repins the project to the requested engine version, or to the
// latest release when requested is empty. Explicit versions are validated
// against the release catalog before anything is written.
func (a *App) Update(ctx context.Context, requested string) error {
	if requested == "" {
		requested = domain.Latest
	}

	version, err := a.resolver.Resolve(ctx, requested, true)
	if err != nil {
		return err
	}

	if err := a.projects.SetEngineVersion(".", version); err != nil {
		return err
	}

	// Drop the stale bootstrap so the next build re-pins cleanly.
	if err := a.synth.Clean(domain.BootstrapDirName); err != nil {
		return err
	}

	a.logger.Info("project now pinned to engine " + version)
	return nil
}

// Versions prints every published engine release, newest first per the
// registry's native order.
func (a *App) Versions(ctx context.Context) error {
	tags, err := a.registry.Tags(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to fetch release catalog")
	}

	for _, tag := range tags {
		fmt.Fprintln(a.out, tag)
	}
	return nil
}

// NewProject scaffolds a fresh project directory named name. An explicit
// requested version is validated against the catalog; an empty request pins
// the latest release.
func (a *App) NewProject(ctx context.Context, name, requested string) error {
	validate := requested != ""
	if !validate {
		requested = domain.Latest
	}

	version, err := a.resolver.Resolve(ctx, requested, validate)
	if err != nil {
		return err
	}

	return a.scaffolder.Create(name, name, version)
}
