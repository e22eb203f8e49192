// SPDX-License-Identifier: MIT

// Package batch scores many independent complexes concurrently and ranks the
// candidate binders by interface confidence.
//
// Each job owns its record and matrix; results land in distinct slots of the
// outcome slice, so no locking is involved. A failed job is recorded and the
// batch keeps going unless Runner.FailFast is set.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/paescore/interaction"
	"github.com/katalvlaran/paescore/loader"
	"github.com/katalvlaran/paescore/logging"
)

// DefaultWorkers is used when Runner.Workers is not positive.
const DefaultWorkers = 4

// Job locates one record and its binder/target boundary. When BinderChain is
// set the boundary is derived from the record's chain ids; otherwise
// BinderLength is used as is.
type Job struct {
	Name         string
	Source       string
	Field        string // "" means loader.DefaultField
	BinderLength int
	BinderChain  string
}

// Outcome is the result of one job. Err is nil on success.
type Outcome struct {
	Job          Job
	Tokens       int // N of the scored matrix
	BinderLength int // boundary actually used
	Result       interaction.Result
	Err          error
	Elapsed      time.Duration
	Rank         int // 1-based after Rank; 0 for failures
}

// OK reports whether the job was scored.
func (o Outcome) OK() bool { return o.Err == nil }

// Run is one batch execution. Outcomes are in job order.
type Run struct {
	ID       uuid.UUID
	Started  time.Time
	Finished time.Time
	Outcomes []Outcome
}

// Succeeded counts scored jobs.
func (r *Run) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}

	return n
}

// Failed counts jobs that errored or were skipped.
func (r *Run) Failed() int { return len(r.Outcomes) - r.Succeeded() }

// Ranked returns the outcomes in rank order.
func (r *Run) Ranked() []Outcome { return Rank(r.Outcomes) }

// Runner scores jobs with at most Workers in flight.
type Runner struct {
	Workers  int
	FailFast bool
	Logger   *zap.Logger // nil disables logging

	// LoaderOptions are passed to every loader.LoadRecord call.
	LoaderOptions []loader.Option
}

// Run scores every job and returns the run even when it also returns an error.
//
// Errors:
//   - the first job error, when FailFast is set; remaining jobs are ErrSkipped.
//   - ctx.Err(), when ctx is cancelled before every job ran; unscheduled jobs
//     are ErrSkipped. A cancellation after the last job finished is ignored.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Run, error) {
	logger := logging.OrNop(r.Logger)
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	run := &Run{
		ID:       uuid.New(),
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(jobs)),
	}
	logger = logger.With(zap.String("run_id", run.ID.String()))
	logger.Info("Batch started", zap.Int("jobs", len(jobs)), zap.Int("workers", workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			run.Outcomes[i] = skipped(gctx, job)
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				run.Outcomes[i] = skipped(gctx, job)
				return nil
			}
			out := r.score(job)
			run.Outcomes[i] = out
			if out.Err != nil {
				logger.Warn("Job failed", zap.String("job", job.Name), zap.Error(out.Err))
				if r.FailFast {
					return fmt.Errorf("batch: job %q: %w", job.Name, out.Err)
				}
				return nil
			}
			logger.Debug("Job scored",
				zap.String("job", job.Name),
				zap.Int("tokens", out.Tokens),
				zap.Int("binder_length", out.BinderLength),
				zap.Float64("pae_interaction", out.Result.PAEInteraction),
				zap.Duration("elapsed", out.Elapsed))
			return nil
		})
	}

	err := g.Wait()
	run.Finished = time.Now()
	logger.Info("Batch finished",
		zap.Int("succeeded", run.Succeeded()),
		zap.Int("failed", run.Failed()),
		zap.Duration("elapsed", run.Finished.Sub(run.Started)))

	if err != nil {
		return run, err
	}
	if run.numSkipped() > 0 {
		if err = ctx.Err(); err != nil {
			return run, fmt.Errorf("batch: %w", err)
		}
	}

	return run, nil
}

// numSkipped counts outcomes that never ran.
func (r *Run) numSkipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if errors.Is(o.Err, ErrSkipped) {
			n++
		}
	}

	return n
}

func skipped(ctx context.Context, job Job) Outcome {
	return Outcome{Job: job, Err: fmt.Errorf("batch: job %q: %w: %w", job.Name, ErrSkipped, ctx.Err())}
}

// score loads one record, resolves the boundary and scores it.
func (r *Runner) score(job Job) (out Outcome) {
	start := time.Now()
	out = Outcome{Job: job}
	defer func() { out.Elapsed = time.Since(start) }()

	if job.BinderChain != "" && job.BinderLength != 0 {
		out.Err = fmt.Errorf("batch: job %q: binder_length %d and binder_chain %q both set: %w",
			job.Name, job.BinderLength, job.BinderChain, ErrInvalidJob)
		return out
	}
	field := job.Field
	if field == "" {
		field = loader.DefaultField
	}

	rec, err := loader.LoadRecord(job.Source, field, r.LoaderOptions...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Tokens = rec.Matrix.Size()

	b := job.BinderLength
	if job.BinderChain != "" {
		if rec.ChainIDs == nil {
			out.Err = fmt.Errorf("batch: job %q: %s: %w", job.Name, rec.Source, ErrNoChainIDs)
			return out
		}
		if b, err = interaction.BinderLength(rec.ChainIDs, job.BinderChain); err != nil {
			out.Err = err
			return out
		}
	}
	out.BinderLength = b

	out.Result, out.Err = interaction.Score(rec.Matrix, b)

	return out
}
