// Package fetch obtains package content hashes by shelling out to the
// zig fetch tool.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

// maxHashOutput bounds the stdout capture; real hashes are a single short line.
const maxHashOutput = 64 << 10

// Fetcher implements ports.HashFetcher using the zig CLI.
type Fetcher struct {
	zigPath string
	logger  ports.Logger
}

// New creates a new Fetcher invoking the given zig executable.
func New(zigPath string, logger ports.Logger) *Fetcher {
	return &Fetcher{
		zigPath: zigPath,
		logger:  logger,
	}
}

// FetchHash runs `zig fetch <sourceURL>` and returns its trimmed stdout.
//
// This subprocess is the system's only content-addressing mechanism: the
// hash it prints is what pins the engine source tree in the generated
// descriptor. No further verification happens on our side.
func (f *Fetcher) FetchHash(ctx context.Context, sourceURL string) (string, error) {
	f.logger.Info("fetching package hash for " + sourceURL)

	//nolint:gosec // sourceURL is synthesized from validated settings and version
	cmd := exec.CommandContext(ctx, f.zigPath, "fetch", sourceURL)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", zerr.Wrap(err, "failed to capture fetch output")
	}
	if err := cmd.Start(); err != nil {
		startErr := zerr.Wrap(err, "failed to start fetch tool")
		return "", zerr.With(startErr, "tool", f.zigPath)
	}

	output, readErr := io.ReadAll(io.LimitReader(stdout, maxHashOutput))
	// Drain anything past the bound so the child never blocks on a full pipe.
	_, _ = io.Copy(io.Discard, stdout)

	if err := cmd.Wait(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}

		detail := zerr.With(zerr.New("zig fetch exited with an error"), "url", sourceURL)
		detail = zerr.With(detail, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			detail = zerr.With(detail, "stderr", msg)
		}
		return "", errors.Join(domain.ErrFetchFailed, detail)
	}
	if readErr != nil {
		return "", zerr.Wrap(readErr, "failed to read fetch output")
	}

	hash := strings.TrimSpace(string(output))
	if hash == "" {
		return "", zerr.With(domain.ErrEmptyHash, "url", sourceURL)
	}
	return hash, nil
}
