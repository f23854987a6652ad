package eventlog

import (
	"context"
	"time"

	"github.com/osse101/MudShop_Go/internal/logger"
)

// CleanupJob trims the ledger on a schedule
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process implements worker.Job. A non-positive retention keeps the
// ledger forever.
func (j *CleanupJob) Process(ctx context.Context) error {
	if j.retentionDays <= 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting, LogFieldRetentionDays, j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, duration)
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, duration)
	return nil
}
