// Package executortest provides a recording entity.CommandRunner for tests.
package executortest

import (
	"context"
	"sync"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
)

type Call struct {
	Request entity.ExecRequest
	Mode    entity.ExecMode
}

// Recorder records every request instead of spawning it. Handler, when set,
// decides each result; otherwise every call succeeds with empty output.
type Recorder struct {
	Handler func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error)
	Missing map[string]bool
	Dry     bool

	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) Run(ctx context.Context, req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Request: req, Mode: mode})
	r.mu.Unlock()

	if r.Handler == nil {
		return &entity.ExecResult{DryRun: r.Dry}, nil
	}
	res, err := r.Handler(req, mode)
	if res == nil {
		res = &entity.ExecResult{}
	}
	res.Err = err
	return res, err
}

func (r *Recorder) RunBatch(ctx context.Context, reqs []entity.ExecRequest) ([]*entity.ExecResult, error) {
	return r.RunBatchMode(ctx, reqs, entity.ExecCaptured)
}

func (r *Recorder) RunBatchMode(ctx context.Context, reqs []entity.ExecRequest, mode entity.ExecMode) ([]*entity.ExecResult, error) {
	results := make([]*entity.ExecResult, len(reqs))
	var failures []CLIErrors.BatchFailure
	for i, req := range reqs {
		res, err := r.Run(ctx, req, mode)
		results[i] = res
		if err != nil {
			failures = append(failures, CLIErrors.BatchFailure{Index: i, Command: req.CommandLine(), Err: err})
		}
	}
	if len(failures) > 0 {
		return results, &CLIErrors.BatchError{Total: len(reqs), Failures: failures}
	}
	return results, nil
}

func (r *Recorder) Probe(name string) bool {
	return r.Dry || !r.Missing[name]
}

func (r *Recorder) DryRun() bool {
	return r.Dry
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Commands returns the command line of every recorded call in order.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Request.CommandLine()
	}
	return out
}
