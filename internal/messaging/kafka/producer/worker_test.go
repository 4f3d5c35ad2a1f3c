package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-inspecta/internal/messaging/kafka"
	kafkamock "go-inspecta/internal/messaging/kafka/mock"
	"go-inspecta/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := kafkamock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken"}

	repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
		{ID: "e1", AggregateID: "acc-1", EventType: "account.created", Topic: "qc.account.lifecycle.v1", Payload: []byte(`{}`), RequestID: "rid-1"},
		{ID: "e2", AggregateID: "acc-2", EventType: "account.created", Topic: "broken", Payload: []byte(`{}`)},
	}, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "e1").Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "e2", "broker unavailable").Return(nil)

	sent, err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)

	assert.Len(t, writer.written, 1)
	msg := writer.written[0]
	assert.Equal(t, []byte("acc-1"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "e1", headers["event_id"])
	assert.Equal(t, "account.created", headers["event_type"])
	assert.Equal(t, "rid-1", headers["request_id"])
}

func TestProcessPendingEvents_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := kafkamock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, nil)

	sent, err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.NoError(t, err)
	assert.Zero(t, sent)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := kafkamock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

	_, err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
}
