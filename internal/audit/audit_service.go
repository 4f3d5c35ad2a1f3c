package audit

import (
	"context"
	"strings"

	auditerrors "go-inspecta/internal/audit/errors"
	"go-inspecta/internal/events"

	"go.uber.org/zap"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	RecordAccountEvent(ctx context.Context, event events.AccountLifecycleEvent, raw []byte) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]LogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

// RecordAccountEvent returns false for an event that was already stored.
func (s *service) RecordAccountEvent(ctx context.Context, event events.AccountLifecycleEvent, raw []byte) (bool, error) {
	if strings.TrimSpace(event.EventID) == "" || strings.TrimSpace(event.EventType) == "" {
		return false, auditerrors.ErrInvalidEvent
	}

	entry := &Log{
		EventID:    event.EventID,
		EventType:  event.EventType,
		AccountID:  event.AccountID,
		Username:   event.Username,
		Actor:      event.Actor,
		Source:     event.Source,
		RequestID:  event.RequestID,
		Payload:    raw,
		OccurredAt: event.OccurredAt,
	}

	inserted, err := s.repo.Insert(ctx, entry)
	if err != nil {
		s.logger.Error("record audit event failed",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return false, err
	}
	if !inserted {
		s.logger.Debug("audit event already recorded", zap.String("event_id", event.EventID))
	}
	return inserted, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]LogResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		return nil, auditerrors.ErrInvalidLimit
	}

	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list audit logs failed", zap.Error(err))
		return nil, err
	}

	resp := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, mapToResponse(l))
	}
	return resp, nil
}

func mapToResponse(l Log) LogResponse {
	return LogResponse{
		EventID:    l.EventID,
		EventType:  l.EventType,
		AccountID:  l.AccountID,
		Username:   l.Username,
		Actor:      l.Actor,
		Source:     l.Source,
		RequestID:  l.RequestID,
		OccurredAt: l.OccurredAt.UTC().Format("2006-01-02 15:04:05"),
	}
}
