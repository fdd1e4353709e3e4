package eventlog

import (
	"context"
	"time"

	"github.com/rethesda/soulsy/internal/logger"
)

// CleanupJob is a job that cleans up old events
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &CleanupJob{
		service:   service,
		retention: retention,
	}
}

// Process executes the cleanup job once
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, "retention", j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Debug(LogMsgCleanupJobCompleted, "deletedCount", count, "duration", duration)
	return nil
}
