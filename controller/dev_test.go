package controller_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/stretchr/testify/require"
)

var devCommandTest = []struct {
	name string
	run  func(c *controller.Controller) error
	out  []string
	mode entity.ExecMode
}{
	{
		name: "Test everything with coverage",
		run: func(c *controller.Controller) error {
			return c.Test(context.Background(), "all", controller.TestOptions{Coverage: true})
		},
		out: []string{
			"uv run pytest --cov",
			"yarn run test -- --coverage",
			"npm run test -- --coverage",
		},
		mode: entity.ExecCaptured,
	},
	{
		name: "Test one component with a filter",
		run: func(c *controller.Controller) error {
			return c.Test(context.Background(), "backend", controller.TestOptions{Filter: "auth"})
		},
		out:  []string{"uv run pytest -k auth"},
		mode: entity.ExecStreamed,
	},
	{
		name: "Lint with fixes",
		run:  func(c *controller.Controller) error { return c.Lint(context.Background(), "all", true) },
		out: []string{
			"uv run ruff check --fix",
			"yarn run lint -- --fix",
			"npm run lint -- --fix",
		},
		mode: entity.ExecCaptured,
	},
	{
		name: "Format skips components without a formatter",
		run:  func(c *controller.Controller) error { return c.Format(context.Background(), "ALL") },
		out: []string{
			"uv run ruff format",
			"yarn run format",
		},
		mode: entity.ExecCaptured,
	},
	{
		name: "Typecheck only covers TypeScript",
		run:  func(c *controller.Controller) error { return c.Typecheck(context.Background(), "all") },
		out: []string{
			"npx tsc --noEmit",
			"npx tsc --noEmit",
		},
		mode: entity.ExecCaptured,
	},
	{
		name: "Build the frontend",
		run:  func(c *controller.Controller) error { return c.Build(context.Background(), "frontend", false) },
		out:  []string{"yarn run build"},
		mode: entity.ExecStreamed,
	},
}

func TestDevCommands(t *testing.T) {
	for _, tt := range devCommandTest {
		t.Run(tt.name, func(t *testing.T) {
			rec := &executortest.Recorder{}
			f := newFixture(t, rec, nil, fixtureOptions{})

			require.NoError(t, tt.run(f.ctrl))
			require.Equal(t, tt.out, rec.Commands())
			for _, call := range rec.Calls() {
				require.Equal(t, tt.mode, call.Mode)
			}
		})
	}
}

func TestUnsupportedSingleComponentRunsNothing(t *testing.T) {
	rec := &executortest.Recorder{}
	f := newFixture(t, rec, nil, fixtureOptions{})

	require.NoError(t, f.ctrl.Format(context.Background(), "infrastructure"))
	require.NoError(t, f.ctrl.Typecheck(context.Background(), "backend"))
	require.Empty(t, rec.Calls())
}

func TestUnknownComponent(t *testing.T) {
	rec := &executortest.Recorder{}
	f := newFixture(t, rec, nil, fixtureOptions{})

	var unknown *CLIErrors.UnknownComponentError
	require.True(t, errors.As(f.ctrl.Test(context.Background(), "mobile", controller.TestOptions{}), &unknown))
	require.Empty(t, rec.Calls())
}

func TestBuildRelease(t *testing.T) {
	rec := &executortest.Recorder{}
	f := newFixture(t, rec, nil, fixtureOptions{})

	require.NoError(t, f.ctrl.Build(context.Background(), "all", true))
	calls := rec.Calls()
	require.Len(t, calls, 3)
	require.Nil(t, calls[0].Request.Env)
	require.Equal(t, map[string]string{"NODE_ENV": "production"}, calls[1].Request.Env)
	require.Equal(t, filepath.Join(f.root, "ui"), calls[1].Request.Dir)
}

func TestDevStart(t *testing.T) {
	t.Run("All servers stream together", func(t *testing.T) {
		rec := &executortest.Recorder{}
		f := newFixture(t, rec, nil, fixtureOptions{})

		require.NoError(t, f.ctrl.DevStart(context.Background(), "all", controller.DevStartOptions{BackendPort: 8000}))
		calls := rec.Calls()
		require.Len(t, calls, 2)
		require.Equal(t, "uv run python -m app.api.main", calls[0].Request.CommandLine())
		require.Equal(t, map[string]string{"PORT": "8000"}, calls[0].Request.Env)
		require.Equal(t, "yarn run dev", calls[1].Request.CommandLine())
		require.Nil(t, calls[1].Request.Env)
		for _, call := range calls {
			require.Equal(t, entity.ExecStreamed, call.Mode)
		}
	})

	t.Run("One server", func(t *testing.T) {
		rec := &executortest.Recorder{}
		f := newFixture(t, rec, nil, fixtureOptions{})

		require.NoError(t, f.ctrl.DevStart(context.Background(), "frontend", controller.DevStartOptions{FrontendPort: 3000}))
		calls := rec.Calls()
		require.Len(t, calls, 1)
		require.Equal(t, map[string]string{"PORT": "3000"}, calls[0].Request.Env)
	})
}

func TestBatchFailureAggregates(t *testing.T) {
	rec := &executortest.Recorder{
		Handler: func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
			if req.Label == "frontend" {
				return &entity.ExecResult{ExitCode: 1}, &CLIErrors.ExecutionFailedError{Command: req.CommandLine(), ExitCode: 1}
			}
			return nil, nil
		},
	}
	f := newFixture(t, rec, nil, fixtureOptions{})

	err := f.ctrl.Test(context.Background(), "all", controller.TestOptions{})
	var batch *CLIErrors.BatchError
	require.True(t, errors.As(err, &batch))
	require.Equal(t, 3, batch.Total)
	require.Len(t, batch.Failures, 1)
	require.Equal(t, 1, batch.Failures[0].Index)
	require.Len(t, rec.Calls(), 3)
}

func TestPreCommit(t *testing.T) {
	t.Run("Not installed", func(t *testing.T) {
		rec := &executortest.Recorder{Missing: map[string]bool{"pre-commit": true}}
		f := newFixture(t, rec, nil, fixtureOptions{})

		require.NoError(t, f.ctrl.PreCommit(context.Background()))
		require.Empty(t, rec.Calls())
	})

	t.Run("Runs from the project root", func(t *testing.T) {
		rec := &executortest.Recorder{}
		f := newFixture(t, rec, nil, fixtureOptions{})

		require.NoError(t, f.ctrl.PreCommit(context.Background()))
		calls := rec.Calls()
		require.Len(t, calls, 1)
		require.Equal(t, "pre-commit run --all-files", calls[0].Request.CommandLine())
		require.Equal(t, f.root, calls[0].Request.Dir)
	})
}
