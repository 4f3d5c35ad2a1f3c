package bootstrap

import (
	"context"
	"sort"

	"go-inspecta/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes lifecycle entries through zap, tagged with the
// binary that produced them.
type StdoutAuditLogger struct {
	service string
	logger  *zap.Logger
}

func NewStdoutAuditLogger(service string, logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{
		service: service,
		logger:  l.Named("bootstrap.audit"),
	}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("service", l.service),
		zap.String("action", entry.Action),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}

	keys := make([]string, 0, len(entry.Meta))
	for k := range entry.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any("meta."+k, entry.Meta[k]))
	}

	l.logger.Info(entry.Message, fields...)
}
