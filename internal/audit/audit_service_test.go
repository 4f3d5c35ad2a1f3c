package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-inspecta/internal/audit"
	auditerrors "go-inspecta/internal/audit/errors"
	auditmock "go-inspecta/internal/audit/mock"
	"go-inspecta/internal/events"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRecordAccountEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auditmock.NewMockRepository(ctrl)
	svc := audit.NewService(repo, zap.NewNop())

	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *audit.Log) (bool, error) {
			assert.Equal(t, "e1", l.EventID)
			assert.Equal(t, events.AccountCreated, l.EventType)
			assert.Equal(t, "admin01", l.Actor)
			assert.Equal(t, at, l.OccurredAt)
			return true, nil
		})

	inserted, err := svc.RecordAccountEvent(context.Background(), events.AccountLifecycleEvent{
		EventID: "e1", EventType: events.AccountCreated, Username: "12345", Actor: "admin01", OccurredAt: at,
	}, []byte(`{}`))
	assert.NoError(t, err)
	assert.True(t, inserted)
}

func TestRecordAccountEvent_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := audit.NewService(auditmock.NewMockRepository(ctrl), zap.NewNop())

	_, err := svc.RecordAccountEvent(context.Background(), events.AccountLifecycleEvent{EventType: "x"}, nil)
	assert.ErrorIs(t, err, auditerrors.ErrInvalidEvent)
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auditmock.NewMockRepository(ctrl)
	svc := audit.NewService(repo, zap.NewNop())

	repo.EXPECT().List(gomock.Any(), audit.ListFilter{Username: "12345", Limit: audit.DefaultListLimit}).
		Return([]audit.Log{{EventID: "e1", Username: "12345", OccurredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}}, nil)

	logs, err := svc.List(context.Background(), audit.ListFilter{Username: "12345"})
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, "2024-05-01 08:00:00", logs[0].OccurredAt)

	_, err = svc.List(context.Background(), audit.ListFilter{Limit: 500})
	assert.ErrorIs(t, err, auditerrors.ErrInvalidLimit)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.List(context.Background(), audit.ListFilter{})
	assert.EqualError(t, err, "db down")
}
