package bootstrap

import (
	"context"
	"time"

	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/logger"
	"github.com/rethesda/soulsy/internal/scheduler"
	"github.com/rethesda/soulsy/internal/worker"
)

// Background job sizing
const (
	JobWorkers           = 1
	JobQueueSize         = 4
	EventCleanupInterval = 10 * time.Minute
)

// Jobs holds the background worker pool and the scheduler feeding it.
type Jobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartJobs starts the worker pool and schedules periodic event log cleanup.
// A non-positive interval uses EventCleanupInterval.
func StartJobs(ctx context.Context, svc eventlog.Service, retention, interval time.Duration) *Jobs {
	if interval <= 0 {
		interval = EventCleanupInterval
	}

	pool := worker.NewPool(JobWorkers, JobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, eventlog.NewCleanupJob(svc, retention))

	logger.FromContext(ctx).Info(LogMsgJobsStarted, "cleanup_interval", interval, "retention", retention)
	return &Jobs{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling first so no job lands on a stopped pool.
func (j *Jobs) Stop() {
	if j == nil {
		return
	}
	j.Scheduler.Stop()
	j.Pool.Stop()
}
