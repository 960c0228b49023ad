package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lume-engine/cli/internal/adapters/bootstrap"
	"github.com/lume-engine/cli/internal/core/domain"
)

// fakeZig writes an executable shell script standing in for the zig binary.
func fakeZig(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "zig")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700))
	return path
}

func TestRun_InvokesGenerateStep(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args")
	zig := fakeZig(t, `printf '%s\n' "$@" > `+out)
	dir := t.TempDir()

	r := bootstrap.NewRunner(zig, quietLogger(t))
	require.NoError(t, r.Run(context.Background(), dir, false, nil))

	recorded, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "build\ngenerate\n", string(recorded))
}

func TestRun_ReleaseAndPassthrough(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args")
	zig := fakeZig(t, `printf '%s\n' "$@" > `+out)

	r := bootstrap.NewRunner(zig, quietLogger(t))
	err := r.Run(context.Background(), t.TempDir(), true, []string{"--scene", "intro"})
	require.NoError(t, err)

	recorded, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "build\ngenerate\n-Doptimize=ReleaseFast\n--\n--scene\nintro\n", string(recorded))
}

func TestRun_ExecutesInBootstrapDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cwd")
	zig := fakeZig(t, `pwd > `+out)
	dir := t.TempDir()

	r := bootstrap.NewRunner(zig, quietLogger(t))
	require.NoError(t, r.Run(context.Background(), dir, false, nil))

	recorded, err := os.ReadFile(out)
	require.NoError(t, err)

	// Resolve symlinks on both sides; macOS temp dirs live under /private.
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(string(recorded[:len(recorded)-1]))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_NonZeroExit(t *testing.T) {
	zig := fakeZig(t, `exit 3`)

	r := bootstrap.NewRunner(zig, quietLogger(t))
	err := r.Run(context.Background(), t.TempDir(), false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrGeneratorFailed.Error())
}

func TestRun_MissingTool(t *testing.T) {
	r := bootstrap.NewRunner(filepath.Join(t.TempDir(), "nope"), quietLogger(t))
	err := r.Run(context.Background(), t.TempDir(), false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrGeneratorFailed.Error())
}

func TestRun_ContextCancelled(t *testing.T) {
	zig := fakeZig(t, `sleep 10`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := bootstrap.NewRunner(zig, quietLogger(t))
	err := r.Run(ctx, t.TempDir(), false, nil)
	require.Error(t, err)
}
