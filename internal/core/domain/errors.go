package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidResponse is returned when the registry response does not
	// contain a recognizable tag field.
	ErrInvalidResponse = zerr.New("invalid registry response")

	// ErrNoReleasesFound is returned when the registry lists zero releases.
	ErrNoReleasesFound = zerr.New("no releases found in registry")

	// ErrVersionNotFound is returned when a requested engine version does not
	// match any release tag. The resolver has already printed the full
	// diagnostic (including suggestions) by the time this error is returned,
	// so callers must not print any additional message for it.
	ErrVersionNotFound = zerr.New("engine version not found")

	// ErrFetchFailed is returned when the hash-fetch subprocess exits non-zero.
	ErrFetchFailed = zerr.New("package hash fetch failed")

	// ErrEmptyHash is returned when the hash-fetch subprocess succeeds but
	// prints nothing usable.
	ErrEmptyHash = zerr.New("fetch tool returned an empty hash")

	// ErrGeneratorFailed is returned when the generator build step exits non-zero.
	ErrGeneratorFailed = zerr.New("generator failed")

	// ErrProjectNotFound is returned when no project configuration file exists
	// in the working directory.
	ErrProjectNotFound = zerr.New("no lume.zon found in this directory")

	// ErrFieldNotFound is returned when a configuration rewrite targets a
	// field that is absent from lume.zon.
	ErrFieldNotFound = zerr.New("field not found in lume.zon")
)
