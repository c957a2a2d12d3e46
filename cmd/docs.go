package cmd

import (
	"context"

	"github.com/cwbdev/cwb/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.projectController(req)
	if err != nil {
		return err
	}
	topic := ""
	if len(req.Args) > 0 {
		topic = req.Args[0]
	}
	return ctrl.Docs(ctx, topic)
}
