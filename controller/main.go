package controller

import (
	"fmt"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/entity"
	"github.com/cwbdev/cwb/gateway"
	"github.com/cwbdev/cwb/registry"
)

// Prompter asks the operator questions.
type Prompter interface {
	Confirm(label string, defaultYes bool) (bool, error)
	ConfirmDestructive(action, target string) (bool, error)
	Text(label, defaultValue string) (string, error)
	Select(label string, items []string) (string, error)
}

// Options carries everything a command needs after flags and config are resolved.
type Options struct {
	Runner      entity.CommandRunner
	Prompter    Prompter
	Interactive func() bool
	Registry    *registry.Registry
	Gateway     *gateway.Gateway
	Config      *configs.Configs
	Environment *entity.EnvironmentConfig
	EnvName     string
	Root        string
	Force       bool
	Verbose     bool
}

type Controller struct {
	runner     entity.CommandRunner
	prompter   Prompter
	gate       *Gate
	components *registry.Registry
	gtwy       *gateway.Gateway
	cfg        *configs.Configs
	env        *entity.EnvironmentConfig
	envName    string
	root       string
	force      bool
	verbose    bool
}

func New(o Options) *Controller {
	return &Controller{
		runner:     o.Runner,
		prompter:   o.Prompter,
		gate:       NewGate(o.Prompter, o.Interactive),
		components: o.Registry,
		gtwy:       o.Gateway,
		cfg:        o.Config,
		env:        o.Environment,
		envName:    o.EnvName,
		root:       o.Root,
		force:      o.Force,
		verbose:    o.Verbose,
	}
}

// displayName is how the active environment is referred to in messages.
func (c *Controller) displayName() string {
	if c.env != nil && c.env.DeploymentName != "" {
		return c.env.DeploymentName
	}
	return c.envName
}

// dryRun reports whether file writes are suppressed, printing the write that
// would have happened.
func (c *Controller) dryRun(format string, a ...interface{}) bool {
	if c.runner == nil || !c.runner.DryRun() {
		return false
	}
	fmt.Printf("DRY RUN: "+format+"\n", a...)
	return true
}
