package settings

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/core/domain"
)

const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (domain.Settings, error) {
			return Load()
		},
	})
}
