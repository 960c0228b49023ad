// Package settings loads the tool-level configuration file.
//
// The file is optional: the built-in defaults point at the upstream engine
// releases. A config file at $LUME_CONFIG (or $XDG_CONFIG_HOME/lume/config.yaml)
// can override the registry endpoint, the engine source location, and the
// zig executable, which is also how tests point the CLI at a local registry.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/lume-engine/cli/internal/core/domain"
)

// EnvConfigPath overrides the settings file location when set.
const EnvConfigPath = "LUME_CONFIG"

type settingsDTO struct {
	Registry string `yaml:"registry"`
	Engine   string `yaml:"engine"`
	Zig      string `yaml:"zig"`
}

// Load reads the settings file if one exists and merges it over the
// defaults. A missing file is not an error; an unreadable or malformed one is.
func Load() (domain.Settings, error) {
	return loadFrom(configPath())
}

func configPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "lume", "config.yaml")
}

func loadFrom(path string) (domain.Settings, error) {
	s := domain.DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own environment
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var dto settingsDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return s, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	if dto.Registry != "" {
		s.RegistryURL = dto.Registry
	}
	if dto.Engine != "" {
		s.EngineURL = dto.Engine
	}
	if dto.Zig != "" {
		s.ZigPath = dto.Zig
	}
	return s, nil
}
