package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) ConfigShow(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.ShowConfig(ctx)
}

func (h *Handler) ConfigGet(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.GetConfig(ctx, req.Args[0])
}
