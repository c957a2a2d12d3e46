package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/cwbdev/cwb/cmd"
	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cwb",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Build, test and deploy the project from one place",
	Long:          "cwb drives the backend, frontend and CDK infrastructure of the project.\n\nDocs: " + constants.ProjectDocsURL,
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				if perr := panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args); perr != nil {
					ui.Debug("Writing crash report failed: %v", perr)
				}
				err = fmt.Errorf("%s %s panicked: %v", cmd.CommandPath(), strings.Join(args, " "), r)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	flags := rootCmd.PersistentFlags()
	flags.StringP("env", "e", "", "Environment to use (defaults to the config's default environment)")
	flags.BoolP("verbose", "v", false, "Print debug output and the commands being run")
	flags.Bool("dry-run", false, "Print commands instead of running them")
	flags.BoolP("force", "f", false, "Skip confirmation prompts")
	flags.String("config", "", "Path to config.yaml")
	flags.Int("jobs", 0, "Maximum commands to run in parallel (0 for no limit)")

	rootCmd.AddCommand(deployCommand(handler))
	rootCmd.AddCommand(devCommand(handler))
	rootCmd.AddCommand(depsCommand(handler))
	rootCmd.AddCommand(envCommand(handler))
	rootCmd.AddCommand(configCommand(handler))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check tools, credentials and project layout",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Doctor, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a starter config.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Init, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version and active environment",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs [topic]",
		Short: "Open documentation for cwb or a wrapped tool",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
}

func deployCommand(handler *cmd.Handler) *cobra.Command {
	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy and manage CDK stacks",
	}

	upCmd := &cobra.Command{
		Use:   "deploy [stack]",
		Short: "Deploy one stack, or every stack with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Deploy, handler.Panic),
	}
	upCmd.Flags().Bool("all", false, "Deploy all stacks")

	destroyCmd := &cobra.Command{
		Use:   "destroy [stack]",
		Short: "Destroy one stack, or every stack with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Destroy, handler.Panic),
	}
	destroyCmd.Flags().Bool("all", false, "Destroy all stacks")

	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap CDK in the environment's account",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Bootstrap, handler.Panic),
	}
	bootstrapCmd.Flags().String("region", "", "Region to bootstrap (defaults to the environment's region)")

	deployCmd.AddCommand(upCmd, destroyCmd, bootstrapCmd)
	deployCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List the stacks of the environment",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.DeployStatus, handler.Panic),
	})
	deployCmd.AddCommand(&cobra.Command{
		Use:   "diff [stack]",
		Short: "Show pending infrastructure changes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Diff, handler.Panic),
	})
	deployCmd.AddCommand(&cobra.Command{
		Use:   "rollback <stack>",
		Short: "Explain how to roll back a stack",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.Rollback, handler.Panic),
	})
	deployCmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove synthesized CDK output",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Clean, handler.Panic),
	})
	return deployCmd
}

func devCommand(handler *cmd.Handler) *cobra.Command {
	devCmd := &cobra.Command{
		Use:   "dev",
		Short: "Run development tasks across components",
	}

	startCmd := &cobra.Command{
		Use:   "start [component]",
		Short: "Start development servers",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.DevStart, handler.Panic),
	}
	startCmd.Flags().Int("backend-port", 0, "Port for the backend server")
	startCmd.Flags().Int("frontend-port", 0, "Port for the frontend server")

	buildCmd := &cobra.Command{
		Use:   "build [component]",
		Short: "Build components",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Build, handler.Panic),
	}
	buildCmd.Flags().Bool("release", false, "Build for production")

	testCmd := &cobra.Command{
		Use:   "test [component]",
		Short: "Run tests",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Test, handler.Panic),
	}
	testCmd.Flags().Bool("coverage", false, "Collect coverage")
	testCmd.Flags().String("test", "", "Only run tests matching this pattern")

	lintCmd := &cobra.Command{
		Use:   "lint [component]",
		Short: "Run linters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Lint, handler.Panic),
	}
	lintCmd.Flags().Bool("fix", false, "Apply automatic fixes")

	devCmd.AddCommand(startCmd, buildCmd, testCmd, lintCmd)
	devCmd.AddCommand(&cobra.Command{
		Use:   "format [component]",
		Short: "Format code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Format, handler.Panic),
	})
	devCmd.AddCommand(&cobra.Command{
		Use:   "typecheck [component]",
		Short: "Type check TypeScript components",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Typecheck, handler.Panic),
	})
	devCmd.AddCommand(&cobra.Command{
		Use:   "pre-commit",
		Short: "Run pre-commit hooks on all files",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.PreCommit, handler.Panic),
	})
	return devCmd
}

func depsCommand(handler *cmd.Handler) *cobra.Command {
	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "Manage component dependencies",
	}
	depsCmd.AddCommand(&cobra.Command{
		Use:   "install [component]",
		Short: "Install dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.DepsInstall, handler.Panic),
	})
	depsCmd.AddCommand(&cobra.Command{
		Use:   "update [component]",
		Short: "Update dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.DepsUpdate, handler.Panic),
	})
	depsCmd.AddCommand(&cobra.Command{
		Use:   "outdated [component]",
		Short: "List outdated dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.DepsOutdated, handler.Panic),
	})
	depsCmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Install exactly what the lockfiles pin",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.DepsSync, handler.Panic),
	})
	return depsCmd
}

func envCommand(handler *cmd.Handler) *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Manage deployment environments",
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Add an environment to config.yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.EnvCreate, handler.Panic),
	}
	createCmd.Flags().String("from", "", "Copy settings from this environment")

	envCmd.AddCommand(createCmd)
	envCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List environments",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.EnvList, handler.Panic),
	})
	envCmd.AddCommand(&cobra.Command{
		Use:   "switch <name>",
		Short: "Make an environment the default",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.EnvSwitch, handler.Panic),
	})
	envCmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove an environment from config.yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.EnvDelete, handler.Panic),
	})
	envCmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show an environment's settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.EnvShow, handler.Panic),
	})
	return envCmd
}

func configCommand(handler *cmd.Handler) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.ConfigShow, handler.Panic),
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.ConfigGet, handler.Panic),
	})
	return configCmd
}

// exitCode is the child's exit code for failed commands, 1 otherwise.
func exitCode(err error) int {
	var failed *CLIErrors.ExecutionFailedError
	if errors.As(err, &failed) && failed.ExitCode > 0 {
		return failed.ExitCode
	}
	return 1
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, CLIErrors.ConfirmationDenied) {
		ui.Info("Operation cancelled")
		return
	}

	if strings.Contains(err.Error(), "unknown command") && len(os.Args) > 1 {
		suggStr := "\nS"

		suggestions := rootCmd.SuggestionsFor(os.Args[1])
		if len(suggestions) > 0 {
			suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
		}

		ui.Error("Unknown command \"%s\" for \"%s\".%s"+
			"ee \"cwb --help\" for available commands.",
			os.Args[1], rootCmd.CommandPath(), suggStr)
	} else {
		ui.Error("%s", err)
	}
	os.Exit(exitCode(err))
}
