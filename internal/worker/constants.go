package worker

import "time"

// Pool defaults
const (
	DefaultWorkers   = 1
	DefaultQueueSize = 8

	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 30 * time.Second
)

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, dropping job"
	LogMsgPoolStopped     = "Worker pool stopped"
)
