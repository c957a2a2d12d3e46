package executor

import (
	"context"
	"fmt"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent requests concurrently with captured output.
func (e *Executor) RunBatch(ctx context.Context, reqs []entity.ExecRequest) ([]*entity.ExecResult, error) {
	return e.RunBatchMode(ctx, reqs, entity.ExecCaptured)
}

// RunBatchMode runs every request to completion, even when some fail.
// results[i] always belongs to reqs[i]. If any member failed the returned
// error is a *errors.BatchError naming each failure.
func (e *Executor) RunBatchMode(ctx context.Context, reqs []entity.ExecRequest, mode entity.ExecMode) ([]*entity.ExecResult, error) {
	results := make([]*entity.ExecResult, len(reqs))

	if e.dryRun || mode == entity.ExecDryRun {
		for i, req := range reqs {
			results[i] = e.dryRunResult(req)
		}
		return results, nil
	}

	var progress *ui.Progress
	if !e.verbose && mode != entity.ExecStreamed {
		progress = ui.NewProgress(len(reqs), e.stdout)
		progress.Start()
	}

	// A plain Group: a failing member must not cancel its siblings.
	var g errgroup.Group
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i, req := range reqs {
		g.Go(func() error {
			results[i] = e.runMember(ctx, req, mode)
			if progress != nil {
				progress.Advance()
			}
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress.Stop()
	}

	var failures []CLIErrors.BatchFailure
	for i, res := range results {
		if res.Err != nil {
			failures = append(failures, CLIErrors.BatchFailure{
				Index:   i,
				Command: reqs[i].CommandLine(),
				Err:     res.Err,
			})
		}
	}
	if len(failures) > 0 {
		return results, &CLIErrors.BatchError{Total: len(reqs), Failures: failures}
	}
	return results, nil
}

func (e *Executor) runMember(ctx context.Context, req entity.ExecRequest, mode entity.ExecMode) (res *entity.ExecResult) {
	defer func() {
		if r := recover(); r != nil {
			res = &entity.ExecResult{
				Err: &CLIErrors.TaskPanickedError{Command: req.CommandLine(), Value: fmt.Sprint(r)},
			}
		}
	}()

	res, err := e.run(ctx, req, mode)
	if res == nil {
		res = &entity.ExecResult{}
	}
	res.Err = err
	return res
}
