package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func stackArg(req *entity.CommandRequest) string {
	if len(req.Args) > 0 {
		return req.Args[0]
	}
	return ""
}

func (h *Handler) Deploy(ctx context.Context, req *entity.CommandRequest) error {
	all, err := req.Cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Deploy(ctx, stackArg(req), all)
}

func (h *Handler) Destroy(ctx context.Context, req *entity.CommandRequest) error {
	all, err := req.Cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Destroy(ctx, stackArg(req), all)
}

func (h *Handler) DeployStatus(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DeployStatus(ctx)
}

func (h *Handler) Diff(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Diff(ctx, stackArg(req))
}

func (h *Handler) Bootstrap(ctx context.Context, req *entity.CommandRequest) error {
	region, err := req.Cmd.Flags().GetString("region")
	if err != nil {
		return err
	}
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Bootstrap(ctx, region)
}

func (h *Handler) Rollback(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Rollback(ctx, stackArg(req))
}

func (h *Handler) Clean(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Clean(ctx)
}
