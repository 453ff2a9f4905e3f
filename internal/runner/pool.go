package runner

import (
	"context"
	"fmt"
	"sync"
)

// Job is a named unit of work, such as rendering one figure.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunPool executes jobs with at most maxWorkers concurrently. Jobs not yet
// started when ctx is done are skipped and reported with ctx's error.
// Returns all errors in job order, each prefixed with the job name.
func RunPool(ctx context.Context, maxWorkers int, jobs []Job) []error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var wg sync.WaitGroup
	results := make([]error, len(jobs))
	sem := make(chan struct{}, maxWorkers)

	for i, job := range jobs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i] = fmt.Errorf("%s: %w", job.Name, ctx.Err())
			continue
		}
		wg.Add(1)
		go func(i int, j Job) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				results[i] = fmt.Errorf("%s: %w", j.Name, err)
				return
			}
			if err := j.Run(ctx); err != nil {
				results[i] = fmt.Errorf("%s: %w", j.Name, err)
			}
		}(i, job)
	}
	wg.Wait()

	var errs []error
	for _, err := range results {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
