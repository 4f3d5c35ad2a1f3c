package bootstrap

import (
	"context"
	"testing"

	"go-inspecta/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	ctx := contextutil.WithRequestID(context.Background(), "rid-7")
	NewStdoutAuditLogger("inspecta-api", zap.New(core)).Log(ctx, AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.FilterLoggerName("bootstrap.audit").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Server is shutting down", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "inspecta-api", fields["service"])
		assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
		assert.Equal(t, "rid-7", fields["request_id"])
		assert.Equal(t, "terminated", fields["meta.signal"])
	}
}

func TestStdoutAuditLogger_DefaultsToGlobalLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	NewStdoutAuditLogger("inspecta-api").Log(context.Background(), AuditLog{Action: "SERVER_START", Message: "Server is starting"})

	entries := logs.FilterLoggerName("bootstrap.audit").All()
	if assert.Len(t, entries, 1) {
		_, hasRID := entries[0].ContextMap()["request_id"]
		assert.False(t, hasRID)
	}
}
