package entity

import (
	"context"
	"strings"
	"time"
)

type ExecMode int

const (
	ExecCaptured ExecMode = iota
	ExecStreamed
	ExecDryRun
)

func (m ExecMode) String() string {
	switch m {
	case ExecCaptured:
		return "captured"
	case ExecStreamed:
		return "streamed"
	case ExecDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// ExecRequest describes one external invocation. Args are passed as a
// discrete argv, never through a shell.
type ExecRequest struct {
	Name  string
	Args  []string
	Dir   string
	Env   map[string]string
	Label string
}

func (r ExecRequest) CommandLine() string {
	return strings.Join(append([]string{r.Name}, r.Args...), " ")
}

type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	DryRun   bool
	Err      error
	Duration time.Duration
}

func (r *ExecResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

type CommandRunner interface {
	Run(ctx context.Context, req ExecRequest, mode ExecMode) (*ExecResult, error)
	RunBatch(ctx context.Context, reqs []ExecRequest) ([]*ExecResult, error)
	RunBatchMode(ctx context.Context, reqs []ExecRequest, mode ExecMode) ([]*ExecResult, error)
	Probe(name string) bool
	DryRun() bool
}
