package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/cwbdev/cwb/entity"
	"github.com/cwbdev/cwb/registry"
	"github.com/cwbdev/cwb/ui"
)

type DevStartOptions struct {
	BackendPort  int
	FrontendPort int
}

type TestOptions struct {
	Coverage bool
	Filter   string
}

// nodeArgs puts extra arguments behind "--" so package manager scripts
// forward them to the underlying tool.
func nodeArgs(c *entity.ComponentConfig, extra ...string) []string {
	if len(extra) == 0 || c.Language != entity.LanguageTypeScript {
		return extra
	}
	return append([]string{"--"}, extra...)
}

func isAll(component string) bool {
	return component == "" || strings.EqualFold(component, entity.AllComponents)
}

// collect builds one request per selected component that supports action.
func (c *Controller) collect(component string, action entity.Action, extra func(*entity.ComponentConfig) ([]string, map[string]string)) ([]entity.ExecRequest, error) {
	selected, err := c.components.Select(component)
	if err != nil {
		return nil, err
	}

	var reqs []entity.ExecRequest
	for comp := range selected {
		var args []string
		var env map[string]string
		if extra != nil {
			args, env = extra(comp)
		}
		req, ok := comp.Request(action, args...)
		if !ok {
			if isAll(component) {
				ui.Debug("Skipping %s: no %s command", comp.Name, action)
			} else {
				ui.Warning("No %s command configured for component '%s'", action, comp.Name)
			}
			continue
		}
		req.Env = env
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// dispatch runs a single request streamed, or several as a captured batch.
func (c *Controller) dispatch(ctx context.Context, reqs []entity.ExecRequest, verb string) error {
	switch len(reqs) {
	case 0:
		return nil
	case 1:
		ui.Info("%s %s...", verb, reqs[0].Label)
		_, err := c.runner.Run(ctx, reqs[0], entity.ExecStreamed)
		return err
	default:
		for i, req := range reqs {
			ui.Step(i+1, len(reqs), "%s %s", verb, req.Label)
		}
		_, err := c.runner.RunBatch(ctx, reqs)
		return err
	}
}

func (c *Controller) DevStart(ctx context.Context, component string, opts DevStartOptions) error {
	reqs, err := c.collect(component, entity.ActionDev, func(comp *entity.ComponentConfig) ([]string, map[string]string) {
		port := 0
		switch comp.Name {
		case registry.Backend:
			port = opts.BackendPort
		case registry.Frontend:
			port = opts.FrontendPort
		}
		if port == 0 {
			return nil, nil
		}
		return nil, map[string]string{"PORT": strconv.Itoa(port)}
	})
	if err != nil {
		return err
	}

	switch len(reqs) {
	case 0:
		return nil
	case 1:
		ui.Info("Starting %s development server...", reqs[0].Label)
		_, err = c.runner.Run(ctx, reqs[0], entity.ExecStreamed)
		return err
	default:
		ui.Info("Starting all development servers...")
		_, err = c.runner.RunBatchMode(ctx, reqs, entity.ExecStreamed)
		return err
	}
}

func (c *Controller) Build(ctx context.Context, component string, release bool) error {
	reqs, err := c.collect(component, entity.ActionBuild, func(comp *entity.ComponentConfig) ([]string, map[string]string) {
		if release && comp.Language == entity.LanguageTypeScript {
			return nil, map[string]string{"NODE_ENV": "production"}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}
	if err := c.dispatch(ctx, reqs, "Building"); err != nil {
		return err
	}
	if len(reqs) > 0 {
		ui.Success("Build completed successfully!")
	}
	return nil
}

func (c *Controller) Test(ctx context.Context, component string, opts TestOptions) error {
	reqs, err := c.collect(component, entity.ActionTest, func(comp *entity.ComponentConfig) ([]string, map[string]string) {
		var extra []string
		switch comp.Language {
		case entity.LanguagePython:
			if opts.Coverage {
				extra = append(extra, "--cov")
			}
			if opts.Filter != "" {
				extra = append(extra, "-k", opts.Filter)
			}
		case entity.LanguageTypeScript:
			if opts.Coverage {
				extra = append(extra, "--coverage")
			}
			if opts.Filter != "" {
				extra = append(extra, "--testNamePattern", opts.Filter)
			}
		}
		return nodeArgs(comp, extra...), nil
	})
	if err != nil {
		return err
	}
	if err := c.dispatch(ctx, reqs, "Testing"); err != nil {
		return err
	}
	if len(reqs) > 0 {
		ui.Success("All tests passed!")
	}
	return nil
}

func (c *Controller) Lint(ctx context.Context, component string, fix bool) error {
	reqs, err := c.collect(component, entity.ActionLint, func(comp *entity.ComponentConfig) ([]string, map[string]string) {
		if !fix {
			return nil, nil
		}
		return nodeArgs(comp, "--fix"), nil
	})
	if err != nil {
		return err
	}
	if err := c.dispatch(ctx, reqs, "Linting"); err != nil {
		return err
	}
	if len(reqs) > 0 {
		ui.Success("All linting checks passed!")
	}
	return nil
}

func (c *Controller) Format(ctx context.Context, component string) error {
	reqs, err := c.collect(component, entity.ActionFormat, nil)
	if err != nil {
		return err
	}
	if err := c.dispatch(ctx, reqs, "Formatting"); err != nil {
		return err
	}
	if len(reqs) > 0 {
		ui.Success("Formatting completed!")
	}
	return nil
}

// Typecheck runs tsc for TypeScript components. Other languages are skipped.
func (c *Controller) Typecheck(ctx context.Context, component string) error {
	selected, err := c.components.Select(component)
	if err != nil {
		return err
	}

	var reqs []entity.ExecRequest
	for comp := range selected {
		if comp.Language != entity.LanguageTypeScript {
			if !isAll(component) {
				ui.Warning("Type checking not supported for %s (%s)", comp.Name, comp.Language)
			}
			continue
		}
		reqs = append(reqs, entity.ExecRequest{
			Name:  "npx",
			Args:  []string{"tsc", "--noEmit"},
			Dir:   comp.Path,
			Label: comp.Name,
		})
	}

	if err := c.dispatch(ctx, reqs, "Type checking"); err != nil {
		return err
	}
	if len(reqs) > 0 {
		ui.Success("All type checks passed!")
	}
	return nil
}

func (c *Controller) PreCommit(ctx context.Context) error {
	if !c.runner.Probe("pre-commit") {
		ui.Warning("pre-commit not found. Install with: uv tool install pre-commit")
		return nil
	}
	ui.Info("Running pre-commit hooks...")
	_, err := c.runner.Run(ctx, entity.ExecRequest{
		Name:  "pre-commit",
		Args:  []string{"run", "--all-files"},
		Dir:   c.root,
		Label: "pre-commit",
	}, entity.ExecStreamed)
	if err != nil {
		return err
	}
	ui.Success("Pre-commit hooks passed!")
	return nil
}
