package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/stretchr/testify/require"
)

var depsTest = []struct {
	name string
	run  func(c *controller.Controller) error
	out  []string
}{
	{
		name: "Install everything",
		run:  func(c *controller.Controller) error { return c.DepsInstall(context.Background(), "all") },
		out:  []string{"uv sync", "yarn install", "npm install"},
	},
	{
		name: "Update the backend",
		run:  func(c *controller.Controller) error { return c.DepsUpdate(context.Background(), "backend") },
		out:  []string{"uv lock --upgrade", "uv sync"},
	},
	{
		name: "Outdated for the frontend",
		run:  func(c *controller.Controller) error { return c.DepsOutdated(context.Background(), "frontend") },
		out:  []string{"yarn outdated"},
	},
	{
		name: "Sync from lockfiles",
		run:  func(c *controller.Controller) error { return c.DepsSync(context.Background()) },
		out:  []string{"uv sync --locked", "yarn install --frozen-lockfile", "npm ci"},
	},
}

func TestDeps(t *testing.T) {
	for _, tt := range depsTest {
		t.Run(tt.name, func(t *testing.T) {
			rec := &executortest.Recorder{}
			f := newFixture(t, rec, nil, fixtureOptions{})

			require.NoError(t, tt.run(f.ctrl))
			require.Equal(t, tt.out, rec.Commands())
			for _, call := range rec.Calls() {
				require.Equal(t, entity.ExecStreamed, call.Mode)
			}
		})
	}
}

func failing(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
	return &entity.ExecResult{ExitCode: 1}, &CLIErrors.ExecutionFailedError{Command: req.CommandLine(), ExitCode: 1}
}

func TestDepsOutdatedFailuresAreIgnored(t *testing.T) {
	rec := &executortest.Recorder{Handler: failing}
	f := newFixture(t, rec, nil, fixtureOptions{})

	require.NoError(t, f.ctrl.DepsOutdated(context.Background(), "all"))
	require.Len(t, rec.Calls(), 3)
}

func TestDepsInstallFailureStops(t *testing.T) {
	rec := &executortest.Recorder{Handler: failing}
	f := newFixture(t, rec, nil, fixtureOptions{})

	err := f.ctrl.DepsInstall(context.Background(), "all")
	var failed *CLIErrors.ExecutionFailedError
	require.True(t, errors.As(err, &failed))
	require.Len(t, rec.Calls(), 1)
}
