package registry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/adapters/settings"
	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.RegistryURL), nil
		},
	})
}
