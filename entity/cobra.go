package entity

import "github.com/spf13/cobra"

type CommandRequest struct {
	Cmd  *cobra.Command
	Args []string
}

type CobraFunction func(cmd *cobra.Command, args []string) error

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Environment string
	ConfigPath  string
	Verbose     bool
	DryRun      bool
	Force       bool
	// Jobs caps concurrent batch members. Zero means no cap.
	Jobs        int
}

func (r *CommandRequest) Options() (*GlobalOptions, error) {
	flags := r.Cmd.Flags()

	env, err := flags.GetString("env")
	if err != nil {
		return nil, err
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return nil, err
	}
	force, err := flags.GetBool("force")
	if err != nil {
		return nil, err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, err
	}

	return &GlobalOptions{
		Environment: env,
		ConfigPath:  configPath,
		Verbose:     verbose,
		DryRun:      dryRun,
		Force:       force,
		Jobs:        jobs,
	}, nil
}

// Component returns the first positional argument, or "all".
func (r *CommandRequest) Component() string {
	if len(r.Args) > 0 && r.Args[0] != "" {
		return r.Args[0]
	}
	return AllComponents
}
