// Package project reads and rewrites the lume.zon project configuration.
//
// The file is ZON, but we never parse it into a tree. Load extracts the
// handful of string fields the CLI cares about, and SetEngineVersion splices
// a new value between the existing quotes so that comments, ordering, and
// formatting survive an update untouched.
package project

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
)

const (
	fieldName          = "name"
	fieldEngineVersion = "engine_version"
	fieldInitialScene  = "initial_scene"
	fieldOutputDir     = "output_dir"
)

// Store implements ports.ProjectStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads dir's lume.zon. Fields absent from the file come back as empty
// strings; only a missing file itself is an error.
func (s *Store) Load(dir string) (*domain.Project, error) {
	path := filepath.Join(dir, domain.ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrProjectNotFound, "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read project configuration"), "path", path)
	}

	p := &domain.Project{}
	if start, end, ok := fieldValue(data, fieldName); ok {
		p.Name = string(data[start:end])
	}
	if start, end, ok := fieldValue(data, fieldEngineVersion); ok {
		p.EngineVersion = string(data[start:end])
	}
	if start, end, ok := fieldValue(data, fieldInitialScene); ok {
		p.InitialScene = string(data[start:end])
	}
	if start, end, ok := fieldValue(data, fieldOutputDir); ok {
		p.OutputDir = string(data[start:end])
	}

	return p, nil
}

// SetEngineVersion rewrites only the engine_version value in dir's lume.zon.
// Every byte outside the old quoted value is preserved verbatim.
func (s *Store) SetEngineVersion(dir, version string) error {
	path := filepath.Join(dir, domain.ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrProjectNotFound, "dir", dir)
		}
		return zerr.With(zerr.Wrap(err, "failed to read project configuration"), "path", path)
	}

	start, end, ok := fieldValue(data, fieldEngineVersion)
	if !ok {
		return zerr.With(domain.ErrFieldNotFound, "field", fieldEngineVersion)
	}

	spliced := make([]byte, 0, len(data)-(end-start)+len(version))
	spliced = append(spliced, data[:start]...)
	spliced = append(spliced, version...)
	spliced = append(spliced, data[end:]...)

	if err := os.WriteFile(path, spliced, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write project configuration"), "path", path)
	}
	return nil
}

// fieldValue locates the quoted value of `.field = "..."` and returns the
// byte range between the quotes. The scan is structural enough for real
// files: the field token must stand alone (not a suffix of a longer
// identifier) and be followed by '=' and a double-quoted string.
func fieldValue(data []byte, field string) (start, end int, ok bool) {
	token := []byte("." + field)

	from := 0
	for {
		idx := bytes.Index(data[from:], token)
		if idx < 0 {
			return 0, 0, false
		}
		idx += from
		from = idx + len(token)

		rest := data[idx+len(token):]
		trimmed := bytes.TrimLeft(rest, " \t\r\n")
		if len(trimmed) == 0 || trimmed[0] != '=' {
			continue
		}

		trimmed = bytes.TrimLeft(trimmed[1:], " \t\r\n")
		if len(trimmed) == 0 || trimmed[0] != '"' {
			continue
		}

		valueStart := len(data) - len(trimmed) + 1
		closing := bytes.IndexByte(data[valueStart:], '"')
		if closing < 0 {
			return 0, 0, false
		}
		return valueStart, valueStart + closing, true
	}
}
