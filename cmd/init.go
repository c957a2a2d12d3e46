package cmd

import (
	"context"
	"os"

	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
	"github.com/cwbdev/cwb/executor"
	"github.com/cwbdev/cwb/gateway"
	"github.com/cwbdev/cwb/registry"
	"github.com/cwbdev/cwb/ui"
)

// Init always works in the current directory, even below an existing project.
func (h *Handler) Init(ctx context.Context, req *entity.CommandRequest) error {
	opts, err := req.Options()
	if err != nil {
		return err
	}
	ui.SetVerbose(opts.Verbose)

	root, err := os.Getwd()
	if err != nil {
		return err
	}
	runner := executor.New(executor.WithDryRun(opts.DryRun), executor.WithVerbose(opts.Verbose))
	ctrl := controller.New(controller.Options{
		Runner:   runner,
		Prompter: h.prompter,
		Registry: registry.New(),
		Gateway:  gateway.New(runner, root),
		Root:     root,
		Force:    opts.Force,
		Verbose:  opts.Verbose,
	})
	return ctrl.Init(ctx)
}
