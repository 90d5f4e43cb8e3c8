// Package batch generates several attractor trajectories concurrently.
package batch

import (
	"context"
	"fmt"
	"time"

	"clifford/internal/attractor"
	"clifford/internal/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Job names one trajectory to generate.
type Job struct {
	Name   string
	Params attractor.Params
	N      int
}

// Result is a completed Job.
type Result struct {
	RunID   string
	Name    string
	N       int
	Xs      []float64
	Ys      []float64
	Summary attractor.Summary
	Elapsed time.Duration
}

// Runner fans jobs out over a bounded number of goroutines.
type Runner struct {
	Concurrency int
}

// NewRunner creates a runner. Concurrency below 1 is treated as 1.
func NewRunner(concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{Concurrency: concurrency}
}

// Run generates every job and returns results in job order.
// The first failing job cancels the rest; its error is returned wrapped with the job name.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	limit := r.Concurrency
	if limit < 1 {
		limit = 1
	}

	timer := logging.StartTimer(logging.CategoryBatch, fmt.Sprintf("batch of %d jobs", len(jobs)))
	defer timer.Stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, job := range jobs {
		eg.Go(func() error {
			res, err := runJob(egCtx, job)
			if err != nil {
				logging.BatchError("job %q failed: %v", job.Name, err)
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, job Job) (Result, error) {
	runID := uuid.NewString()
	log := logging.Get(logging.CategoryBatch).With("run_id", runID, "job", job.Name)
	log.Debug("starting %d iterations with %s", job.N, job.Params)

	start := time.Now()
	xs, ys, err := job.Params.GenerateContext(ctx, job.N)
	if err != nil {
		return Result{}, err
	}
	sum, err := attractor.Summarize(xs, ys)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)
	log.Info("generated %d points in %v", job.N, elapsed)

	return Result{
		RunID:   runID,
		Name:    job.Name,
		N:       job.N,
		Xs:      xs,
		Ys:      ys,
		Summary: sum,
		Elapsed: elapsed,
	}, nil
}
