package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
)

type runFunc func(ctx context.Context, req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error)

// Executor runs external commands. When built with dry-run enabled every
// mode degrades to entity.ExecDryRun, so callers never branch on it.
type Executor struct {
	dryRun  bool
	verbose bool
	limit   int
	stdout  io.Writer
	stderr  io.Writer
	stdin   io.Reader
	run     runFunc
}

type Option func(*Executor)

func WithDryRun(dryRun bool) Option {
	return func(e *Executor) { e.dryRun = dryRun }
}

func WithVerbose(verbose bool) Option {
	return func(e *Executor) { e.verbose = verbose }
}

// WithLimit caps the number of batch members running at once. Zero means no cap.
func WithLimit(n int) Option {
	return func(e *Executor) { e.limit = n }
}

func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

func New(opts ...Option) *Executor {
	e := &Executor{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.run = e.spawn
	return e
}

func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Run executes req to completion. The returned result is never nil, and its
// Err matches the returned error.
func (e *Executor) Run(ctx context.Context, req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
	if e.dryRun || mode == entity.ExecDryRun {
		return e.dryRunResult(req), nil
	}
	return e.run(ctx, req, mode)
}

// Probe reports whether name resolves on PATH. Always true in dry-run.
func (e *Executor) Probe(name string) bool {
	if e.dryRun {
		return true
	}
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *Executor) dryRunResult(req entity.ExecRequest) *entity.ExecResult {
	color := ui.Color(e.stdout)
	fmt.Fprintf(e.stdout, "%s %s\n", color.Bold(color.Yellow("DRY RUN:")), req.CommandLine())
	if req.Dir != "" {
		fmt.Fprintf(e.stdout, "  in %s\n", req.Dir)
	}
	for _, kv := range envPairs(req.Env) {
		fmt.Fprintf(e.stdout, "  with %s\n", kv)
	}
	return &entity.ExecResult{DryRun: true}
}

func (e *Executor) spawn(ctx context.Context, req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
	command := req.CommandLine()
	if e.verbose {
		if req.Dir != "" {
			ui.Debug("Running: %s (in %s)", command, req.Dir)
		} else {
			ui.Debug("Running: %s", command)
		}
	}

	cmd := exec.CommandContext(ctx, req.Name, req.Args...)
	cmd.Dir = req.Dir
	cmd.Env = append(os.Environ(), envPairs(req.Env)...)

	var stdout, stderr bytes.Buffer
	res := &entity.ExecResult{}
	start := time.Now()

	var err error
	switch mode {
	case entity.ExecStreamed:
		cmd.Stdout = e.stdout
		cmd.Stderr = e.stderr
		cmd.Stdin = e.stdin
		if err = cmd.Start(); err == nil {
			stop := forwardSignals(cmd)
			err = cmd.Wait()
			stop()
		}
	default:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err = cmd.Run()
	}

	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if e.verbose && mode != entity.ExecStreamed {
		if out := strings.TrimRight(res.Stdout, "\n"); out != "" {
			ui.Debug("Output:\n%s", out)
		}
		if out := strings.TrimRight(res.Stderr, "\n"); out != "" {
			ui.Debug("Stderr:\n%s", out)
		}
	}

	if err != nil {
		res.Err = classify(command, res, err)
		return res, res.Err
	}
	return res, nil
}

func classify(command string, res *entity.ExecResult, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CLIErrors.ExecutionFailedError{
			Command:  command,
			ExitCode: exitErr.ExitCode(),
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}
	return &CLIErrors.SpawnFailedError{Command: command, Err: err}
}

// envPairs renders env as sorted KEY=VALUE pairs.
func envPairs(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+env[k])
	}
	return pairs
}
