package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lume-engine/cli/internal/app"
	"github.com/lume-engine/cli/internal/core/domain"
	"github.com/lume-engine/cli/internal/core/ports/mocks"
)

type fixture struct {
	registry   *mocks.MockRegistry
	resolver   *mocks.MockResolver
	fetcher    *mocks.MockHashFetcher
	synth      *mocks.MockSynthesizer
	runner     *mocks.MockRunner
	projects   *mocks.MockProjectStore
	scaffolder *mocks.MockScaffolder
	logger     *mocks.MockLogger
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		registry:   mocks.NewMockRegistry(ctrl),
		resolver:   mocks.NewMockResolver(ctrl),
		fetcher:    mocks.NewMockHashFetcher(ctrl),
		synth:      mocks.NewMockSynthesizer(ctrl),
		runner:     mocks.NewMockRunner(ctrl),
		projects:   mocks.NewMockProjectStore(ctrl),
		scaffolder: mocks.NewMockScaffolder(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(
		domain.DefaultSettings(),
		f.registry,
		f.resolver,
		f.fetcher,
		f.synth,
		f.runner,
		f.projects,
		f.scaffolder,
		f.logger,
	)
	return f
}

func TestBuild_HappyPath(t *testing.T) {
	f := newFixture(t)

	f.projects.EXPECT().Load(".").Return(&domain.Project{Name: "demo", EngineVersion: "0.33.0"}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), "0.33.0", false).Return("0.33.0", nil)

	sourceURL := domain.DefaultSettings().SourceURL("0.33.0")
	f.fetcher.EXPECT().FetchHash(gomock.Any(), sourceURL).Return("somehash", nil)
	f.synth.EXPECT().Synthesize(domain.BootstrapDirName, sourceURL, "somehash").Return(nil)
	f.runner.EXPECT().Run(gomock.Any(), domain.BootstrapDirName, true, []string{"--scene", "intro"}).Return(nil)

	err := f.app.Build(context.Background(), true, []string{"--scene", "intro"})
	require.NoError(t, err)
}

func TestBuild_MissingPinDefaultsToLatest(t *testing.T) {
	f := newFixture(t)

	f.projects.EXPECT().Load(".").Return(&domain.Project{Name: "demo"}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), domain.Latest, false).Return("0.34.0", nil)

	sourceURL := domain.DefaultSettings().SourceURL("0.34.0")
	f.fetcher.EXPECT().FetchHash(gomock.Any(), sourceURL).Return("h", nil)
	f.synth.EXPECT().Synthesize(domain.BootstrapDirName, sourceURL, "h").Return(nil)
	f.runner.EXPECT().Run(gomock.Any(), domain.BootstrapDirName, false, nil).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), false, nil))
}

func TestBuild_NoProject(t *testing.T) {
	f := newFixture(t)

	f.projects.EXPECT().Load(".").Return(nil, domain.ErrProjectNotFound)

	err := f.app.Build(context.Background(), false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProjectNotFound.Error())
}

func TestBuild_FetchFailureGetsHint(t *testing.T) {
	f := newFixture(t)

	f.projects.EXPECT().Load(".").Return(&domain.Project{EngineVersion: "0.99.0"}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), "0.99.0", false).Return("0.99.0", nil)
	f.fetcher.EXPECT().FetchHash(gomock.Any(), gomock.Any()).
		Return("", errors.Join(domain.ErrFetchFailed, errors.New("exit status 1")))

	var hint string
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		hint = msg
	})

	err := f.app.Build(context.Background(), false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))
	assert.Contains(t, hint, `"0.99.0"`)
	assert.Contains(t, hint, "lume versions")
}

func TestBuild_SynthesizeFailureStopsBeforeRun(t *testing.T) {
	f := newFixture(t)

	f.projects.EXPECT().Load(".").Return(&domain.Project{EngineVersion: "1.0.0"}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), "1.0.0", false).Return("1.0.0", nil)
	f.fetcher.EXPECT().FetchHash(gomock.Any(), gomock.Any()).Return("h", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	// No runner expectation: a failed synthesis must not invoke the build tool.
	err := f.app.Build(context.Background(), false, nil)
	require.Error(t, err)
}

func TestUpdate_ExplicitVersionIsValidated(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "0.32.0", true).Return("0.32.0", nil)
	f.projects.EXPECT().SetEngineVersion(".", "0.32.0").Return(nil)
	f.synth.EXPECT().Clean(domain.BootstrapDirName).Return(nil)

	require.NoError(t, f.app.Update(context.Background(), "0.32.0"))
}

func TestUpdate_EmptyRequestMeansLatest(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.Latest, true).Return("0.34.0", nil)
	f.projects.EXPECT().SetEngineVersion(".", "0.34.0").Return(nil)
	f.synth.EXPECT().Clean(domain.BootstrapDirName).Return(nil)

	require.NoError(t, f.app.Update(context.Background(), ""))
}

func TestUpdate_ResolveFailureWritesNothing(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "9.9.9", true).
		Return("", domain.ErrVersionNotFound)

	// No store or synthesizer expectations: a failed resolution must leave
	// the project untouched.
	err := f.app.Update(context.Background(), "9.9.9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVersionNotFound))
}

func TestVersions(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().Tags(gomock.Any()).Return([]string{"0.34.0", "0.33.0"}, nil)

	var out bytes.Buffer
	require.NoError(t, f.app.WithOutput(&out).Versions(context.Background()))
	assert.Equal(t, "0.34.0\n0.33.0\n", out.String())
}

func TestVersions_RegistryFailure(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().Tags(gomock.Any()).Return(nil, errors.New("registry unreachable"))

	err := f.app.Versions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch release catalog")
}

func TestNewProject_ExplicitVersion(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "0.31.0", true).Return("0.31.0", nil)
	f.scaffolder.EXPECT().Create("asteroids", "asteroids", "0.31.0").Return(nil)

	require.NoError(t, f.app.NewProject(context.Background(), "asteroids", "0.31.0"))
}

func TestNewProject_DefaultsToLatest(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), domain.Latest, false).Return("0.34.0", nil)
	f.scaffolder.EXPECT().Create("asteroids", "asteroids", "0.34.0").Return(nil)

	require.NoError(t, f.app.NewProject(context.Background(), "asteroids", ""))
}
