package cmd

import (
	"context"

	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) DevStart(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	backendPort, err := flags.GetInt("backend-port")
	if err != nil {
		return err
	}
	frontendPort, err := flags.GetInt("frontend-port")
	if err != nil {
		return err
	}

	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DevStart(ctx, req.Component(), controller.DevStartOptions{
		BackendPort:  backendPort,
		FrontendPort: frontendPort,
	})
}

func (h *Handler) Build(ctx context.Context, req *entity.CommandRequest) error {
	release, err := req.Cmd.Flags().GetBool("release")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Build(ctx, req.Component(), release)
}

func (h *Handler) Test(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	coverage, err := flags.GetBool("coverage")
	if err != nil {
		return err
	}
	filter, err := flags.GetString("test")
	if err != nil {
		return err
	}

	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Test(ctx, req.Component(), controller.TestOptions{
		Coverage: coverage,
		Filter:   filter,
	})
}

func (h *Handler) Lint(ctx context.Context, req *entity.CommandRequest) error {
	fix, err := req.Cmd.Flags().GetBool("fix")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Lint(ctx, req.Component(), fix)
}

func (h *Handler) Format(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Format(ctx, req.Component())
}

func (h *Handler) Typecheck(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Typecheck(ctx, req.Component())
}

func (h *Handler) PreCommit(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.PreCommit(ctx)
}
