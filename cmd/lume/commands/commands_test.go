package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lume-engine/cli/cmd/lume/commands"
	"github.com/lume-engine/cli/internal/build"
)

type mockApp struct {
	buildFunc    func(ctx context.Context, release bool, passthrough []string) error
	updateFunc   func(ctx context.Context, requested string) error
	versionsFunc func(ctx context.Context) error
	newFunc      func(ctx context.Context, name, requested string) error
}

func (m *mockApp) Build(ctx context.Context, release bool, passthrough []string) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, release, passthrough)
	}
	return nil
}

func (m *mockApp) Update(ctx context.Context, requested string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, requested)
	}
	return nil
}

func (m *mockApp) Versions(ctx context.Context) error {
	if m.versionsFunc != nil {
		return m.versionsFunc(ctx)
	}
	return nil
}

func (m *mockApp) NewProject(ctx context.Context, name, requested string) error {
	if m.newFunc != nil {
		return m.newFunc(ctx, name, requested)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags and passthrough args", func(t *testing.T) {
		var capturedRelease bool
		var capturedArgs []string

		mock := &mockApp{
			buildFunc: func(_ context.Context, release bool, passthrough []string) error {
				capturedRelease = release
				capturedArgs = passthrough
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "--release", "--", "--scene", "intro"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedRelease)
		assert.Equal(t, []string{"--scene", "intro"}, capturedArgs)
	})

	t.Run("defaults to debug with no args", func(t *testing.T) {
		var capturedRelease bool
		var capturedArgs []string

		mock := &mockApp{
			buildFunc: func(_ context.Context, release bool, passthrough []string) error {
				capturedRelease = release
				capturedArgs = passthrough
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, capturedRelease)
		assert.Empty(t, capturedArgs)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ bool, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Update(t *testing.T) {
	t.Run("forwards explicit version", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			updateFunc: func(_ context.Context, requested string) error {
				captured = requested
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"update", "0.32.0"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "0.32.0", captured)
	})

	t.Run("no version means latest", func(t *testing.T) {
		captured := "sentinel"
		mock := &mockApp{
			updateFunc: func(_ context.Context, requested string) error {
				captured = requested
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"update"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured)
	})
}

func TestCommands_New(t *testing.T) {
	t.Run("forwards name and pinned version", func(t *testing.T) {
		var capturedName, capturedVersion string
		mock := &mockApp{
			newFunc: func(_ context.Context, name, requested string) error {
				capturedName = name
				capturedVersion = requested
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"new", "asteroids", "--engine-version", "0.31.0"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "asteroids", capturedName)
		assert.Equal(t, "0.31.0", capturedVersion)
	})

	t.Run("requires a project name", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetArgs([]string{"new"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Versions(t *testing.T) {
	called := false
	mock := &mockApp{
		versionsFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"versions"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
