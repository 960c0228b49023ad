// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lume-engine/cli/internal/adapters/bootstrap"
	_ "github.com/lume-engine/cli/internal/adapters/fetch"
	_ "github.com/lume-engine/cli/internal/adapters/logger"
	_ "github.com/lume-engine/cli/internal/adapters/project"
	_ "github.com/lume-engine/cli/internal/adapters/registry"
	_ "github.com/lume-engine/cli/internal/adapters/scaffold"
	_ "github.com/lume-engine/cli/internal/adapters/settings"
	// Register app and engine nodes.
	_ "github.com/lume-engine/cli/internal/app"
	_ "github.com/lume-engine/cli/internal/engine/resolver"
)
