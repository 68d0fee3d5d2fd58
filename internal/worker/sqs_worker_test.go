package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/mocks"
	"github.com/kingrain94/rent-dashboard/internal/service/queue"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const testQueueURL = "https://sqs.ap-southeast-1.amazonaws.com/000000000000/tenant-index"

type fakeQueue struct {
	mu       sync.Mutex
	messages []queue.ReceivedMessage
	deleted  []string
	err      error
}

func (f *fakeQueue) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	messages := f.messages
	f.messages = nil
	return messages, nil
}

func (f *fakeQueue) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(receiptHandle))
	return nil
}

func (f *fakeQueue) deletedHandles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

type mockStatementExporter struct {
	mock.Mock
}

func (m *mockStatementExporter) Export(ctx context.Context, ownerID string, month time.Time) (string, error) {
	args := m.Called(ctx, ownerID, month)
	return args.String(0), args.Error(1)
}

type SQSWorkerTestSuite struct {
	suite.Suite
	queue  *fakeQueue
	search *mocks.SearchRepository
	worker *SQSWorker
}

func TestSQSWorker(t *testing.T) {
	suite.Run(t, new(SQSWorkerTestSuite))
}

func (s *SQSWorkerTestSuite) SetupTest() {
	s.queue = &fakeQueue{}
	s.search = mocks.NewSearchRepository(s.T())
	s.worker = NewSQSWorker("index", s.queue, testQueueURL, NewIndexHandler(s.search), logger.NewNop(), 1, 10*time.Millisecond)
}

func (s *SQSWorkerTestSuite) TestIndexAndDeleteMessages() {
	tenant := &domain.Tenant{ID: "tenant1", UserID: "owner-1", Name: "Ana"}
	s.queue.messages = []queue.ReceivedMessage{
		{Message: queue.Message{Type: queue.MessageTypeIndexTenant, OwnerID: "owner-1", Tenant: tenant}, ReceiptHandle: aws.String("r1")},
		{Message: queue.Message{Type: queue.MessageTypeDeleteTenant, OwnerID: "owner-1", TenantID: "tenant2"}, ReceiptHandle: aws.String("r2")},
	}
	s.search.On("IndexTenant", mock.Anything, tenant).Return(nil)
	s.search.On("DeleteTenant", mock.Anything, "owner-1", "tenant2").Return(nil)

	s.NoError(s.worker.processMessages(context.Background()))

	s.Equal([]string{"r1", "r2"}, s.queue.deletedHandles())
}

func (s *SQSWorkerTestSuite) TestFailedMessageStaysOnQueue() {
	tenant := &domain.Tenant{ID: "tenant1", UserID: "owner-1"}
	s.queue.messages = []queue.ReceivedMessage{
		{Message: queue.Message{Type: queue.MessageTypeIndexTenant, OwnerID: "owner-1", Tenant: tenant}, ReceiptHandle: aws.String("r1")},
		{Message: queue.Message{Type: "UNKNOWN"}, ReceiptHandle: aws.String("r2")},
		{Message: queue.Message{Type: queue.MessageTypeIndexTenant, OwnerID: "owner-1"}, ReceiptHandle: aws.String("r3")},
	}
	s.search.On("IndexTenant", mock.Anything, tenant).Return(errors.New("opensearch unavailable"))

	s.NoError(s.worker.processMessages(context.Background()))

	s.Empty(s.queue.deletedHandles())
}

func (s *SQSWorkerTestSuite) TestReceiveFailure() {
	s.queue.err = errors.New("throttled")

	s.Error(s.worker.processMessages(context.Background()))
}

func (s *SQSWorkerTestSuite) TestStartPollsUntilStopped() {
	tenant := &domain.Tenant{ID: "tenant1", UserID: "owner-1"}
	s.queue.messages = []queue.ReceivedMessage{
		{Message: queue.Message{Type: queue.MessageTypeIndexTenant, OwnerID: "owner-1", Tenant: tenant}, ReceiptHandle: aws.String("r1")},
	}
	s.search.On("IndexTenant", mock.Anything, tenant).Return(nil)

	s.worker.Start()
	s.Eventually(func() bool { return len(s.queue.deletedHandles()) == 1 }, time.Second, 5*time.Millisecond)
	s.worker.Stop()
}

func TestStatementHandler(t *testing.T) {
	month := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	exporter := new(mockStatementExporter)
	exporter.On("Export", mock.Anything, "owner-1", month).Return("statements/owner-1/2026-10.csv", nil)
	handler := NewStatementHandler(exporter)

	err := handler.Handle(context.Background(), queue.Message{Type: queue.MessageTypeStatement, OwnerID: "owner-1", Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exporter.AssertExpectations(t)

	if err := handler.Handle(context.Background(), queue.Message{Type: queue.MessageTypeStatement, OwnerID: "owner-1"}); err == nil {
		t.Fatal("expected error for message without month")
	}
	if err := handler.Handle(context.Background(), queue.Message{Type: queue.MessageTypeIndexTenant}); err == nil {
		t.Fatal("expected error for foreign message type")
	}
}
