package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
	"github.com/cwbdev/cwb/executor"
	"github.com/cwbdev/cwb/gateway"
	"github.com/cwbdev/cwb/registry"
	"github.com/cwbdev/cwb/ui"
)

type Handler struct {
	prompter controller.Prompter
}

func New() *Handler {
	return &Handler{
		prompter: ui.Prompts{},
	}
}

// controller loads the config and components for one invocation. Every
// configuration error surfaces here, before anything is spawned.
func (h *Handler) controller(req *entity.CommandRequest) (*controller.Controller, error) {
	opts, err := req.Options()
	if err != nil {
		return nil, err
	}
	ui.SetVerbose(opts.Verbose)

	path, err := configs.Locate(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := configs.Load(path)
	if err != nil {
		return nil, err
	}
	env, name, err := cfg.Resolve(opts.Environment)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(cfg.Path())
	components, err := registry.Discover(root)
	if err != nil {
		return nil, err
	}
	ui.Debug("Using %s, environment %s", cfg.Path(), name)
	ui.Debug("Components: %s", strings.Join(components.Names(), ", "))

	runner := executor.New(
		executor.WithDryRun(opts.DryRun),
		executor.WithVerbose(opts.Verbose),
		executor.WithLimit(opts.Jobs),
	)
	return controller.New(controller.Options{
		Runner:      runner,
		Prompter:    h.prompter,
		Registry:    components,
		Gateway:     gateway.New(runner, root),
		Config:      cfg,
		Environment: env,
		EnvName:     name,
		Root:        root,
		Force:       opts.Force,
		Verbose:     opts.Verbose,
	}), nil
}

// projectController is for commands that work without a config file. It
// falls back to the working directory as the project root.
func (h *Handler) projectController(req *entity.CommandRequest) (*controller.Controller, error) {
	ctrl, err := h.controller(req)
	if err == nil {
		return ctrl, nil
	}
	ui.Debug("Continuing without project config: %v", err)

	opts, err := req.Options()
	if err != nil {
		return nil, err
	}
	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	components, err := registry.Discover(root)
	if err != nil {
		return nil, err
	}

	runner := executor.New(
		executor.WithDryRun(opts.DryRun),
		executor.WithVerbose(opts.Verbose),
		executor.WithLimit(opts.Jobs),
	)
	return controller.New(controller.Options{
		Runner:   runner,
		Prompter: h.prompter,
		Registry: components,
		Gateway:  gateway.New(runner, root),
		Root:     root,
		Force:    opts.Force,
		Verbose:  opts.Verbose,
	}), nil
}
