package domain

// Latest is the version sentinel that resolves to the newest release tag.
// A resolved version never contains this sentinel.
const Latest = "latest"

// BootstrapDirName is the throwaway directory holding the generated
// bootstrap descriptors. It is regenerated on every build and safe to delete.
const BootstrapDirName = ".lume"

// ConfigFileName is the project configuration file consumed and rewritten
// by this CLI.
const ConfigFileName = "lume.zon"
