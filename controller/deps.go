package controller

import (
	"context"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
)

type depsOperation struct {
	verb  string
	steps func(entity.PackageManager) [][]string
	// lenient operations log failures instead of returning them
	lenient bool
}

var (
	depsInstall  = depsOperation{verb: "Installing dependencies for", steps: entity.PackageManager.InstallArgs}
	depsUpdate   = depsOperation{verb: "Updating dependencies for", steps: entity.PackageManager.UpdateArgs}
	depsOutdated = depsOperation{verb: "Checking outdated dependencies for", steps: entity.PackageManager.OutdatedArgs, lenient: true}
	depsSync     = depsOperation{verb: "Syncing dependencies for", steps: entity.PackageManager.SyncArgs}
)

func (c *Controller) DepsInstall(ctx context.Context, component string) error {
	if err := c.runDeps(ctx, component, depsInstall); err != nil {
		return err
	}
	ui.Success("Dependencies installed successfully!")
	return nil
}

func (c *Controller) DepsUpdate(ctx context.Context, component string) error {
	if err := c.runDeps(ctx, component, depsUpdate); err != nil {
		return err
	}
	ui.Success("Dependencies updated successfully!")
	return nil
}

func (c *Controller) DepsOutdated(ctx context.Context, component string) error {
	return c.runDeps(ctx, component, depsOutdated)
}

// DepsSync installs exactly what the lockfiles pin, for every component.
func (c *Controller) DepsSync(ctx context.Context) error {
	if err := c.runDeps(ctx, entity.AllComponents, depsSync); err != nil {
		return err
	}
	ui.Success("Dependencies synced successfully!")
	return nil
}

func (c *Controller) runDeps(ctx context.Context, component string, op depsOperation) error {
	selected, err := c.components.Select(component)
	if err != nil {
		return err
	}

	for comp := range selected {
		steps := op.steps(comp.PackageManager)
		if len(steps) == 0 {
			return &CLIErrors.UnsupportedPackageManagerError{Component: comp.Name}
		}

		ui.Info("%s %s (%s)...", op.verb, comp.Name, comp.PackageManager)
		for _, argv := range steps {
			_, err := c.runner.Run(ctx, entity.ExecRequest{
				Name:  argv[0],
				Args:  argv[1:],
				Dir:   comp.Path,
				Label: comp.Name,
			}, entity.ExecStreamed)
			if err == nil {
				continue
			}
			if op.lenient {
				ui.Debug("%s: %v", comp.Name, err)
				break
			}
			return err
		}
	}
	return nil
}
