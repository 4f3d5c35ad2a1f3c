package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-inspecta/internal/audit"
	auditerrors "go-inspecta/internal/audit/errors"
	"go-inspecta/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAccountLifecycle writes every account event to the audit log.
// Undecodable or invalid messages are committed and skipped. Storage failures
// leave the offset uncommitted, so the group redelivers after a restart.
func ConsumeAccountLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditService audit.Service,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.account_lifecycle")
	log.Info("account lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("account lifecycle consumer stopped")
				return
			}
			log.Error("fetch account lifecycle message failed", zap.Error(err))
			continue
		}

		HandleAccountLifecycle(ctx, reader, msg, auditService, log)
	}
}

// HandleAccountLifecycle processes one message and reports whether its offset
// was committed.
func HandleAccountLifecycle(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	auditService audit.Service,
	log *zap.Logger,
) bool {
	var event events.AccountLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode account lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return commit(ctx, reader, msg, log)
	}
	if event.EventID == "" {
		event.EventID = headerValue(msg, "event_id")
	}

	inserted, err := auditService.RecordAccountEvent(ctx, event, msg.Value)
	if err != nil {
		if errors.Is(err, auditerrors.ErrInvalidEvent) {
			log.Warn("invalid account lifecycle event, skipping", zap.Int64("offset", msg.Offset))
			return commit(ctx, reader, msg, log)
		}
		log.Error("record account lifecycle event failed",
			zap.String("event_id", event.EventID),
			zap.String("username", event.Username),
			zap.Error(err),
		)
		return false
	}

	if !commit(ctx, reader, msg, log) {
		return false
	}

	if inserted {
		log.Info("account lifecycle event recorded",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.String("username", event.Username),
		)
	} else {
		log.Warn("account lifecycle event already recorded, skipping",
			zap.String("event_id", event.EventID),
		)
	}
	return true
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit account lifecycle message failed", zap.Error(err))
		return false
	}
	return true
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
