package entity_test

import (
	"testing"

	"github.com/cwbdev/cwb/entity"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, args ...string) *entity.CommandRequest {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.Flags()
	flags.StringP("env", "e", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("dry-run", false, "")
	flags.BoolP("force", "f", false, "")
	flags.String("config", "", "")
	flags.Int("jobs", 0, "")
	require.NoError(t, flags.Parse(args))
	return &entity.CommandRequest{Cmd: cmd, Args: flags.Args()}
}

func TestOptions(t *testing.T) {
	req := newRequest(t, "-e", "prod", "--dry-run", "-f", "--jobs", "2", "backend")

	opts, err := req.Options()
	require.NoError(t, err)
	require.Equal(t, &entity.GlobalOptions{
		Environment: "prod",
		DryRun:      true,
		Force:       true,
		Jobs:        2,
	}, opts)
	require.Equal(t, "backend", req.Component())
}

func TestComponentDefaultsToAll(t *testing.T) {
	require.Equal(t, entity.AllComponents, newRequest(t).Component())
}
