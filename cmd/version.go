package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.projectController(req)
	if err != nil {
		return err
	}
	return ctrl.Version(ctx)
}
