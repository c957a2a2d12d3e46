package controller

import (
	"context"
	"fmt"

	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/lib/git"
	"github.com/cwbdev/cwb/ui"
)

func (c *Controller) Deploy(ctx context.Context, stack string, all bool) error {
	if err := c.gtwy.CheckCDKDir(); err != nil {
		return err
	}
	ui.Info("Deploying to environment: %s (%s)", ui.BlueText(c.displayName()), c.env.DeploymentStage)
	c.logRevision(ctx)

	switch {
	case all:
		ui.Info("Deploying all stacks...")
		if err := c.gtwy.DeployAll(ctx, c.env); err != nil {
			return err
		}
	default:
		if stack == "" {
			selected, err := c.selectStack(ctx, "Select stack to deploy")
			if err != nil {
				return err
			}
			stack = selected
		}
		ui.Info("Deploying stack: %s", stack)
		if err := c.gtwy.Deploy(ctx, c.env, stack); err != nil {
			return err
		}
	}

	ui.Success("Deployment completed successfully!")
	return nil
}

func (c *Controller) Destroy(ctx context.Context, stack string, all bool) error {
	if err := c.gtwy.CheckCDKDir(); err != nil {
		return err
	}
	// Listing stacks is read-only, so the prompt can name the real target.
	if !all && stack == "" {
		selected, err := c.selectStack(ctx, "Select stack to destroy")
		if err != nil {
			return err
		}
		stack = selected
	}

	target := stack
	if all {
		target = "all stacks"
	}
	if err := c.confirm("destroy", fmt.Sprintf("%s in %s", target, c.displayName())); err != nil {
		return err
	}

	if all {
		ui.Info("Destroying all stacks...")
		if err := c.gtwy.DestroyAll(ctx, c.env); err != nil {
			return err
		}
	} else {
		ui.Info("Destroying stack: %s", stack)
		if err := c.gtwy.Destroy(ctx, c.env, stack); err != nil {
			return err
		}
	}

	ui.Success("Destroy operation completed successfully!")
	return nil
}

func (c *Controller) DeployStatus(ctx context.Context) error {
	if err := c.gtwy.CheckCDKDir(); err != nil {
		return err
	}
	ui.Info("Deployment status for environment: %s", c.displayName())
	return c.gtwy.Status(ctx, c.env)
}

func (c *Controller) Diff(ctx context.Context, stack string) error {
	if err := c.gtwy.CheckCDKDir(); err != nil {
		return err
	}
	ui.Info("Showing deployment diff for environment: %s", c.displayName())
	return c.gtwy.Diff(ctx, c.env, stack)
}

func (c *Controller) Bootstrap(ctx context.Context, region string) error {
	if err := c.gtwy.CheckCDKDir(); err != nil {
		return err
	}
	if region == "" {
		region = c.env.Region
	}
	ui.Info("Bootstrapping CDK in region: %s for account: %s", region, c.env.AccountNumber)
	if err := c.gtwy.Bootstrap(ctx, c.env, region); err != nil {
		return err
	}
	ui.Success("Bootstrap completed successfully!")
	return nil
}

// Rollback only reports: rolling back depends on the deployment strategy.
func (c *Controller) Rollback(ctx context.Context, stack string) error {
	ui.Warning("Rollback of stack '%s' in %s is not automated", stack, c.displayName())
	fmt.Print(ui.Paragraph("Check out the last good revision and run `cwb deploy deploy " + stack +
		"` again, or roll back the CloudFormation stack from the AWS console."))
	return nil
}

func (c *Controller) Clean(ctx context.Context) error {
	ui.Info("Cleaning deployment artifacts...")
	removed, err := c.gtwy.Clean(ctx)
	if err != nil {
		return err
	}
	if removed {
		ui.Info("Removed CDK output directory")
	}
	ui.Success("Cleanup completed successfully!")
	return nil
}

func (c *Controller) selectStack(ctx context.Context, label string) (string, error) {
	stacks, err := c.gtwy.ListStacks(ctx, c.env)
	if err != nil {
		return "", err
	}
	if len(stacks) == 0 {
		return "", CLIErrors.StackNotFound
	}
	if c.prompter == nil {
		return "", fmt.Errorf("no stack given and no terminal to choose one from %d stacks", len(stacks))
	}
	return c.prompter.Select(label, stacks)
}

// logRevision notes what is being deployed when running verbosely.
func (c *Controller) logRevision(ctx context.Context) {
	if !c.verbose || c.runner.DryRun() {
		return
	}
	meta, err := git.New(c.runner, c.root).GetAllMetadata(ctx)
	if err != nil || !meta.IsRepo {
		return
	}
	ui.Debug("Revision %s on %s: %s", meta.Revision(), meta.Branch, meta.Commit.Message)
}
