package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
)

const defaultRegion = "us-east-1"

func (c *Controller) ListEnvironments(ctx context.Context) error {
	doc := c.cfg.Document()

	fmt.Print(ui.Heading("Environments"))
	for _, name := range doc.EnvironmentNames() {
		env := doc.Environments[name]
		line := fmt.Sprintf("%s (%s, %s)", name, env.Region, env.AccountNumber)
		if name == doc.DefaultEnvironment {
			fmt.Printf("  %s %s\n", ui.GreenText("*"), ui.Bold(line))
			continue
		}
		fmt.Printf("    %s\n", ui.GrayText(line))
	}
	return nil
}

type CreateEnvironmentOptions struct {
	Name string
	From string
}

func (c *Controller) CreateEnvironment(ctx context.Context, opts CreateEnvironmentOptions) error {
	if err := configs.ValidateName(opts.Name); err != nil {
		return err
	}
	name := strings.ToLower(opts.Name)
	store := configs.NewStore(c.cfg.Path())

	exists, err := store.HasEnvironment(name)
	if err != nil {
		return err
	}
	if exists && !c.force {
		if c.prompter == nil || !c.gate.interactive() {
			return &CLIErrors.EnvironmentExistsError{Name: name}
		}
		ok, err := c.prompter.Confirm(fmt.Sprintf("Environment '%s' already exists. Overwrite", name), false)
		if err != nil {
			return err
		}
		if !ok {
			return CLIErrors.ConfirmationDenied
		}
	}

	if opts.From != "" {
		if _, ok := c.cfg.Document().Environments[strings.ToLower(opts.From)]; !ok {
			return &CLIErrors.UnknownEnvironmentError{Name: strings.ToLower(opts.From), Valid: c.cfg.Document().EnvironmentNames()}
		}
		if c.dryRun("copy environment '%s' to '%s' in %s", opts.From, name, c.cfg.Path()) {
			return nil
		}
		if err := store.CopyEnvironment(name, opts.From); err != nil {
			return err
		}
		ui.Success("Created environment '%s' from '%s'", name, opts.From)
		return nil
	}

	fields, err := c.promptEnvironment(name)
	if err != nil {
		return err
	}
	if err := configs.ValidateEnvironment(name, fields); err != nil {
		return err
	}
	if c.dryRun("add environment '%s' to %s", name, c.cfg.Path()) {
		return nil
	}
	if err := store.AddEnvironment(name, fields); err != nil {
		return err
	}
	ui.Success("Created environment '%s'", name)
	return nil
}

// promptEnvironment collects the required fields of a new environment block.
func (c *Controller) promptEnvironment(name string) (map[string]string, error) {
	if c.prompter == nil {
		return nil, fmt.Errorf("cannot prompt for environment %s without a terminal, use --from", name)
	}

	region, err := c.prompter.Text("AWS region", defaultRegion)
	if err != nil {
		return nil, err
	}
	account, err := c.prompter.Text("AWS account number", "")
	if err != nil {
		return nil, err
	}
	profile, err := c.prompter.Text("AWS profile", "")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"deploymentName":  name,
		"deploymentStage": name,
		"region":          region,
		"accountNumber":   account,
		"awsProfile":      profile,
	}, nil
}

func (c *Controller) SwitchEnvironment(ctx context.Context, name string) error {
	if _, ok := c.cfg.Document().Environments[strings.ToLower(name)]; !ok {
		return &CLIErrors.UnknownEnvironmentError{Name: strings.ToLower(name), Valid: c.cfg.Document().EnvironmentNames()}
	}
	if c.dryRun("set default environment to '%s' in %s", strings.ToLower(name), c.cfg.Path()) {
		return nil
	}
	previous, err := configs.NewStore(c.cfg.Path()).SetDefaultEnvironment(name)
	if err != nil {
		return err
	}
	if previous != "" && previous != strings.ToLower(name) {
		ui.Info("Previous default environment: %s", previous)
	}
	ui.Success("Switched default environment to '%s'", strings.ToLower(name))
	return nil
}

func (c *Controller) DeleteEnvironment(ctx context.Context, name string) error {
	name = strings.ToLower(name)
	if _, ok := c.cfg.Document().Environments[name]; !ok {
		return &CLIErrors.UnknownEnvironmentError{Name: name, Valid: c.cfg.Document().EnvironmentNames()}
	}
	if name == c.cfg.Document().DefaultEnvironment {
		return &CLIErrors.DefaultEnvironmentDeleteError{Name: name}
	}
	if err := c.confirm("delete environment", name); err != nil {
		return err
	}
	if c.dryRun("remove environment '%s' from %s", name, c.cfg.Path()) {
		return nil
	}
	if err := configs.NewStore(c.cfg.Path()).RemoveEnvironment(name); err != nil {
		return err
	}
	ui.Success("Deleted environment '%s'", name)
	return nil
}

func (c *Controller) ShowEnvironment(ctx context.Context, name string) error {
	env, resolved := c.env, c.envName
	if name != "" {
		var err error
		env, resolved, err = c.cfg.Resolve(name)
		if err != nil {
			return err
		}
	}

	fmt.Print(ui.Heading(fmt.Sprintf("Environment: %s", resolved)))
	fmt.Print(ui.KeyValues(environmentSummary(env)))
	return nil
}

func environmentSummary(env *entity.EnvironmentConfig) map[string]string {
	return map[string]string{
		"Deployment name": env.DeploymentName,
		"Stage":           env.DeploymentStage,
		"Account":         env.AccountNumber,
		"Region":          env.Region,
		"Profile":         env.Profile(),
		"App name":        env.AppName,
		"Log level":       env.LogLevel,
	}
}
