package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/ui"
	"github.com/google/uuid"
)

// ReportPanic writes a crash log for an unexpected panic and tells the user
// where to find it.
func ReportPanic(panicErr, stacktrace, command string, args []string) error {
	ui.Error("cwb crashed unexpectedly: %s", panicErr)

	id := uuid.New().String()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("cwb-crash-%s.log", id))
	report := strings.Join([]string{
		fmt.Sprintf("id: %s", id),
		fmt.Sprintf("time: %s", time.Now().UTC().Format(time.RFC3339)),
		fmt.Sprintf("version: %s", constants.Version),
		fmt.Sprintf("command: %s %s", command, strings.Join(args, " ")),
		fmt.Sprintf("error: %s", panicErr),
		"",
		stacktrace,
	}, "\n")

	if err := os.WriteFile(path, []byte(report), 0600); err != nil {
		return err
	}
	ui.Error("Crash report written to %s", path)
	return nil
}
