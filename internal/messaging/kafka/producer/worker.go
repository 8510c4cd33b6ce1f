package producer

import (
	"context"
	"time"

	"hris-payroll/internal/messaging/kafka"

	"go.uber.org/zap"
)

const defaultBatchSize = 50

// RunOutboxWorker polls the outbox table and relays pending rows to Kafka
// until ctx is cancelled. Rows that fail to publish are marked failed and
// retried on a later poll with backoff handled by the repository.
func RunOutboxWorker(
	ctx context.Context,
	repo kafka.OutboxRepository,
	publisher *Publisher,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.outbox.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := relayBatch(ctx, repo, publisher, log); err != nil {
				log.Error("outbox poll failed", zap.Error(err))
			}
		}
	}
}

func relayBatch(ctx context.Context, repo kafka.OutboxRepository, publisher *Publisher, log *zap.Logger) error {
	events, err := repo.ListPending(ctx, defaultBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	sent := 0
	for _, event := range events {
		if err := publisher.Publish(ctx, event); err != nil {
			log.Error("outbox publish failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("outbox mark sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
	}

	log.Info("outbox batch relayed", zap.Int("pending", len(events)), zap.Int("sent", sent))
	return nil
}
