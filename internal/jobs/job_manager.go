package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	relayEnabled   bool
}

// NewJobManager creates a new job manager. The relay job only runs when
// enabled; a disabled relay leaves outbox records for an external drainer.
func NewJobManager(outboxRelayJob *OutboxRelayJob, relayEnabled bool) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		relayEnabled:   relayEnabled,
	}
}

// StartAll starts all enabled scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if !jm.relayEnabled {
		return nil
	}

	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.relayEnabled {
		jm.outboxRelayJob.Stop()
	}
}
