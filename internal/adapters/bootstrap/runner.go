package bootstrap

import (
	"context"
	"os"
	"os/exec"

	"go.trai.ch/zerr"

	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports"
)

// releaseFlag is forwarded to the build tool when a release build is requested.
const releaseFlag = "-Doptimize=ReleaseFast"

// Runner implements ports.Runner using the zig CLI.
type Runner struct {
	zigPath string
	logger  ports.Logger
}

// NewRunner creates a new Runner invoking the given zig executable.
func NewRunner(zigPath string, logger ports.Logger) *Runner {
	return &Runner{
		zigPath: zigPath,
		logger:  logger,
	}
}

// Run executes `zig build generate` inside dir. The child inherits this
// process's stdio: generator output is the user's output, not ours to
// transform. The call blocks until the child exits.
func (r *Runner) Run(ctx context.Context, dir string, release bool, passthrough []string) error {
	args := []string{"build", "generate"}
	if release {
		args = append(args, releaseFlag)
	}
	if len(passthrough) > 0 {
		args = append(args, "--")
		args = append(args, passthrough...)
	}

	r.logger.Info("running generator")

	//nolint:gosec // passthrough arguments are intentionally forwarded verbatim
	cmd := exec.CommandContext(ctx, r.zigPath, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}

		genErr := zerr.With(domain.ErrGeneratorFailed, "exit_code", exitCode)
		return zerr.With(genErr, "dir", dir)
	}

	return nil
}
