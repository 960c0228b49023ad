package scaffold

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/adapters/logger"
	"github.com/lume-engine/cli/internal/core/ports"
)

const NodeID graft.ID = "adapter.scaffolder"

func init() {
	graft.Register(graft.Node[ports.Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Scaffolder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
