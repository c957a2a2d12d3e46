package cmd

import (
	"context"

	"github.com/cwbdev/cwb/controller"
)

func (h *Handler) Panic(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error {
	return controller.ReportPanic(panicErr, stacktrace, command, args)
}
