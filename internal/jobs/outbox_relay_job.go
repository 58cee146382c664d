package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob periodically drains the transactional outbox to the message
// broker. A failed run only logs; unpublished records stay in the outbox and
// are picked up again on the next tick.
type OutboxRelayJob struct {
	relay     *services.OutboxRelay
	cron      *cron.Cron
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a job that relays pending outbox records on a
// fixed interval.
func NewOutboxRelayJob(
	relay *services.OutboxRelay,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		relay:     relay,
		cron:      cron.New(cron.WithSeconds()),
		interval:  interval,
		batchSize: batchSize,
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job on its configured interval.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		published, err := j.relay.PublishPendingEvents(ctx, j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay run failed", "error", err, "published", published)
			return
		}

		if published > 0 {
			j.logger.InfoContext(ctx, "Outbox relay run completed", "published", published)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "interval", j.interval.String())
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
