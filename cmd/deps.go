package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) DepsInstall(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DepsInstall(ctx, req.Component())
}

func (h *Handler) DepsUpdate(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DepsUpdate(ctx, req.Component())
}

func (h *Handler) DepsOutdated(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DepsOutdated(ctx, req.Component())
}

func (h *Handler) DepsSync(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.DepsSync(ctx)
}
