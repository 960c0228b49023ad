package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/adapters/logger"
	"github.com/lume-engine/cli/internal/adapters/settings"
	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

const (
	SynthesizerNodeID graft.ID = "adapter.bootstrap.synthesizer"
	RunnerNodeID      graft.ID = "adapter.bootstrap.runner"
)

func init() {
	graft.Register(graft.Node[ports.Synthesizer]{
		ID:        SynthesizerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Synthesizer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSynthesizer(log), nil
		},
	})

	graft.Register(graft.Node[ports.Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(cfg.ZigPath, log), nil
		},
	})
}
