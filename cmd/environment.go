package cmd

import (
	"context"

	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) EnvList(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.ListEnvironments(ctx)
}

func (h *Handler) EnvCreate(ctx context.Context, req *entity.CommandRequest) error {
	from, err := req.Cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.CreateEnvironment(ctx, controller.CreateEnvironmentOptions{
		Name: req.Args[0],
		From: from,
	})
}

func (h *Handler) EnvSwitch(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.SwitchEnvironment(ctx, req.Args[0])
}

func (h *Handler) EnvDelete(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DeleteEnvironment(ctx, req.Args[0])
}

func (h *Handler) EnvShow(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	name := ""
	if len(req.Args) > 0 {
		name = req.Args[0]
	}
	return ctrl.ShowEnvironment(ctx, name)
}
