package jobs

import (
	"context"
	"fmt"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	reminderJob *AppointmentReminderJob
}

// NewJobManager creates a job manager for the given jobs.
func NewJobManager(reminderJob *AppointmentReminderJob) *JobManager {
	return &JobManager{reminderJob: reminderJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start appointment reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes until ctx ends.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.reminderJob.Stop(ctx)
}
