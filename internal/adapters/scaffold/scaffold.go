// Package scaffold creates new project directories from static templates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

const configTemplate = `.{
    .name = "%s",
    .engine_version = "%s",
    .initial_scene = "scenes/main.zon",
    .output_dir = "generated",
}
`

const sceneTemplate = `.{
    .name = "main",
    .entities = .{},
}
`

const gitignoreTemplate = `.lume/
generated/
`

// Scaffolder implements ports.Scaffolder on the local filesystem.
type Scaffolder struct {
	logger ports.Logger
}

// New creates a new Scaffolder.
func New(logger ports.Logger) *Scaffolder {
	return &Scaffolder{logger: logger}
}

// Create materializes a new project under dir. The directory must not exist
// yet; refusing to write into an existing one keeps Create from clobbering
// unrelated files.
func (s *Scaffolder) Create(dir, name, engineVersion string) error {
	if err := os.Mkdir(dir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create project directory"), "dir", dir)
	}

	config := fmt.Sprintf(configTemplate, name, engineVersion)
	if err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(config), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write project configuration")
	}

	scenesDir := filepath.Join(dir, "scenes")
	if err := os.Mkdir(scenesDir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create scenes directory")
	}
	if err := os.WriteFile(filepath.Join(scenesDir, "main.zon"), []byte(sceneTemplate), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write starter scene")
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignoreTemplate), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write .gitignore")
	}

	s.logger.Info(fmt.Sprintf("created project %q pinned to engine %s", name, engineVersion))
	return nil
}
