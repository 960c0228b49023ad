package project

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lume-engine/cli/internal/core/ports"
)

const NodeID graft.ID = "adapter.project_store"

func init() {
	graft.Register(graft.Node[ports.ProjectStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectStore, error) {
			return NewStore(), nil
		},
	})
}
