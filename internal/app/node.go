package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/adapters/bootstrap"
	"github.com/lume-engine/cli/internal/adapters/fetch"
	"github.com/lume-engine/cli/internal/adapters/logger"
	"github.com/lume-engine/cli/internal/adapters/project"
	"github.com/lume-engine/cli/internal/adapters/registry"
	"github.com/lume-engine/cli/internal/adapters/scaffold"
	"github.com/lume-engine/cli/internal/adapters/settings"
	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
	"github.com/lume-engine/cli/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			registry.NodeID,
			resolver.NodeID,
			fetch.NodeID,
			bootstrap.SynthesizerNodeID,
			bootstrap.RunnerNodeID,
			project.NodeID,
			scaffold.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.HashFetcher](ctx)
	if err != nil {
		return nil, err
	}

	synth, err := graft.Dep[ports.Synthesizer](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}

	projects, err := graft.Dep[ports.ProjectStore](ctx)
	if err != nil {
		return nil, err
	}

	scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, reg, res, fetcher, synth, runner, projects, scaffolder, log), nil
}
