package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) Doctor(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller(req)
	if err != nil {
		return err
	}
	return ctrl.Doctor(ctx)
}
