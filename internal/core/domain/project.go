package domain

// Project holds the string fields this CLI reads from lume.zon.
// An empty string means the field is absent; only the file itself being
// missing is an error (ErrProjectNotFound).
type Project struct {
	Name          string
	EngineVersion string
	InitialScene  string
	OutputDir     string
}
