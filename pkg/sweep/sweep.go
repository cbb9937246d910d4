/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
)

var logger = log.New("sweep")

// Job is a periodic maintenance task, typically expiry of stored records.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner executes jobs on their own tickers until the context is cancelled. A
// failing or panicking job is logged and retried on the next tick.
type Runner struct {
	jobs []Job
}

// NewRunner returns a new Runner instance.
func NewRunner(jobs ...Job) *Runner {
	return &Runner{
		jobs: jobs,
	}
}

// Start launches one goroutine per job and returns immediately.
func (r *Runner) Start(ctx context.Context) {
	for _, job := range r.jobs {
		go r.runLoop(ctx, job)
	}
}

func (r *Runner) runLoop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx, job)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, job Job) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorc(ctx, "sweep job panicked",
				logfields.WithSweepJob(job.Name), log.WithError(panicError(rec)))
		}
	}()

	if err := job.Run(ctx); err != nil {
		logger.Warnc(ctx, "sweep job failed", logfields.WithSweepJob(job.Name), log.WithError(err))
	}
}

func panicError(rec interface{}) error {
	if err, ok := rec.(error); ok {
		return err
	}

	return fmt.Errorf("%v", rec)
}
