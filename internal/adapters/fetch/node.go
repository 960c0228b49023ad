package fetch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/adapters/logger"
	"github.com/lume-engine/cli/internal/adapters/settings"
	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

const NodeID graft.ID = "adapter.hash_fetcher"

func init() {
	graft.Register(graft.Node[ports.HashFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HashFetcher, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.ZigPath, log), nil
		},
	})
}
