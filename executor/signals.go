package executor

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/cwbdev/cwb/ui"
)

// forwardSignals relays SIGINT and SIGTERM to the running child until the
// returned stop function is called.
func forwardSignals(cmd *exec.Cmd) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			select {
			case sig := <-sigs:
				if err := cmd.Process.Signal(sig); err != nil {
					ui.Debug("Child process error: %v", err)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
