package consumer_test

import (
	"context"
	"errors"
	"testing"

	auditerrors "go-inspecta/internal/audit/errors"
	auditmock "go-inspecta/internal/audit/mock"
	"go-inspecta/internal/events"
	"go-inspecta/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	committed []kafkago.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func TestHandleAccountLifecycle_Records(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auditmock.NewMockService(ctrl)
	reader := &fakeReader{}
	msg := kafkago.Message{Value: []byte(`{"event_id":"e1","event_type":"account.created","username":"12345"}`)}

	svc.EXPECT().
		RecordAccountEvent(gomock.Any(), gomock.Any(), msg.Value).
		DoAndReturn(func(_ context.Context, ev events.AccountLifecycleEvent, _ []byte) (bool, error) {
			assert.Equal(t, "e1", ev.EventID)
			assert.Equal(t, "12345", ev.Username)
			return true, nil
		})

	ok := consumer.HandleAccountLifecycle(context.Background(), reader, msg, svc, zap.NewNop())
	assert.True(t, ok)
	assert.Len(t, reader.committed, 1)
}

func TestHandleAccountLifecycle_EventIDFromHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auditmock.NewMockService(ctrl)
	msg := kafkago.Message{
		Value:   []byte(`{"event_type":"account.deleted","username":"12345"}`),
		Headers: []kafkago.Header{{Key: "event_id", Value: []byte("h1")}},
	}

	svc.EXPECT().
		RecordAccountEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev events.AccountLifecycleEvent, _ []byte) (bool, error) {
			assert.Equal(t, "h1", ev.EventID)
			return false, nil
		})

	assert.True(t, consumer.HandleAccountLifecycle(context.Background(), &fakeReader{}, msg, svc, zap.NewNop()))
}

func TestHandleAccountLifecycle_BadPayloadIsCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auditmock.NewMockService(ctrl)
	reader := &fakeReader{}

	ok := consumer.HandleAccountLifecycle(context.Background(), reader, kafkago.Message{Value: []byte("{")}, svc, zap.NewNop())
	assert.True(t, ok)
	assert.Len(t, reader.committed, 1)
}

func TestHandleAccountLifecycle_InvalidEventIsCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auditmock.NewMockService(ctrl)
	reader := &fakeReader{}
	svc.EXPECT().RecordAccountEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, auditerrors.ErrInvalidEvent)

	ok := consumer.HandleAccountLifecycle(context.Background(), reader, kafkago.Message{Value: []byte(`{}`)}, svc, zap.NewNop())
	assert.True(t, ok)
	assert.Len(t, reader.committed, 1)
}

func TestHandleAccountLifecycle_StorageErrorIsNotCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auditmock.NewMockService(ctrl)
	reader := &fakeReader{}
	svc.EXPECT().RecordAccountEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	ok := consumer.HandleAccountLifecycle(context.Background(), reader, kafkago.Message{Value: []byte(`{"event_id":"e1","event_type":"x"}`)}, svc, zap.NewNop())
	assert.False(t, ok)
	assert.Empty(t, reader.committed)
}

func TestConsumeAccountLifecycle_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeAccountLifecycle(ctx, &fakeReader{}, nil, zap.NewNop())
		close(done)
	}()
	<-done
}
