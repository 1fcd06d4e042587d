package report_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/worker/report"
)

const testStream = "stream:report:events"

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, fromID string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, fromID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func eventMessage(t *testing.T, id string, event domain.ReportEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestAuditWorker_ProcessesUntilStreamCloses(t *testing.T) {
	ch := make(chan domain.StreamMessage, 3)
	ch <- eventMessage(t, "1-0", domain.ReportEvent{
		Type:       domain.ReportCreated,
		ReportID:   "8",
		ReportType: domain.ReportTypeDangerous,
		SessionID:  "s1",
		OccurredAt: time.Now(),
	})
	ch <- domain.StreamMessage{ID: "2-0", Data: "{not json"}
	ch <- eventMessage(t, "3-0", domain.ReportEvent{Type: domain.ReportUpvoted, ReportID: "1", Upvotes: 25})
	close(ch)

	streams := &MockStreamRepository{}
	streams.On("ConsumeStream", mock.Anything, testStream, "0").
		Return((<-chan domain.StreamMessage)(ch), nil)

	w := report.NewAuditWorker(streams, testStream, "0", zap.NewNop())
	assert.Equal(t, "report-audit", w.Name())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Канал закрыт, ctx жив: воркер возвращает nil от ctx.Err()
	assert.NoError(t, w.Start(ctx))
	assert.Equal(t, int64(2), w.Processed())
	assert.Equal(t, int64(1), w.Skipped())
	streams.AssertExpectations(t)
}

func TestAuditWorker_DefaultsToNewEvents(t *testing.T) {
	ch := make(chan domain.StreamMessage)
	close(ch)

	streams := &MockStreamRepository{}
	streams.On("ConsumeStream", mock.Anything, testStream, "$").
		Return((<-chan domain.StreamMessage)(ch), nil)

	w := report.NewAuditWorker(streams, testStream, "", zap.NewNop())
	require.NoError(t, w.Start(context.Background()))
	streams.AssertExpectations(t)
}

func TestAuditWorker_ConsumeError(t *testing.T) {
	streams := &MockStreamRepository{}
	streams.On("ConsumeStream", mock.Anything, testStream, "$").
		Return(nil, fmt.Errorf("connection refused"))

	w := report.NewAuditWorker(streams, testStream, "$", zap.NewNop())
	err := w.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuditWorker_StopCancelsConsumer(t *testing.T) {
	ch := make(chan domain.StreamMessage)
	started := make(chan struct{})
	streams := &MockStreamRepository{}
	streams.On("ConsumeStream", mock.Anything, testStream, "$").
		Run(func(args mock.Arguments) {
			close(started)
			ctx := args.Get(0).(context.Context)
			go func() {
				<-ctx.Done()
				close(ch)
			}()
		}).
		Return((<-chan domain.StreamMessage)(ch), nil)

	w := report.NewAuditWorker(streams, testStream, "$", zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	<-started
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("audit worker did not stop")
	}
}
