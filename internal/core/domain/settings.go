package domain

const (
	defaultRegistryURL = "https://api.github.com/repos/lume-engine/lume"
	defaultEngineURL   = "github.com/lume-engine/lume"
	defaultZigPath     = "zig"
)

// Settings carries the tool-level configuration: where releases are listed,
// where the engine source lives, and which zig executable to invoke.
type Settings struct {
	// RegistryURL is the base URL of the release-listing API.
	RegistryURL string

	// EngineURL is the engine source location as host/org/repo, without scheme.
	EngineURL string

	// ZigPath is the zig executable used for hash fetching and the
	// bootstrap build. Resolved via PATH when not absolute.
	ZigPath string
}

// DefaultSettings returns the built-in settings for the upstream engine.
func DefaultSettings() Settings {
	return Settings{
		RegistryURL: defaultRegistryURL,
		EngineURL:   defaultEngineURL,
		ZigPath:     defaultZigPath,
	}
}

// SourceURL synthesizes the fetchable source location for a concrete engine
// version. The downstream build tool understands this git+https form.
func (s Settings) SourceURL(version string) string {
	return "git+https://" + s.EngineURL + "?ref=v" + version
}
