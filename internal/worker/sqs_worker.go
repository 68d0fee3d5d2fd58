package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/service/queue"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

// MessageQueue is the receiving side of the SQS service.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// Handler processes one queue message. A message is deleted from the queue
// only when Handle succeeds.
type Handler interface {
	Handle(ctx context.Context, msg queue.Message) error
}

type SQSWorker struct {
	name         string
	queue        MessageQueue
	queueURL     string
	handler      Handler
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	ctx          context.Context
	cancel       context.CancelFunc
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewSQSWorker(
	name string,
	queue MessageQueue,
	queueURL string,
	handler Handler,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *SQSWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &SQSWorker{
		name:         name,
		queue:        queue,
		queueURL:     queueURL,
		handler:      handler,
		logger:       logger.With(zap.String("worker", name)),
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		ctx:          ctx,
		cancel:       cancel,
		shutdownChan: make(chan struct{}),
	}
}

func (w *SQSWorker) Start() {
	w.logger.Info("Starting SQS workers...", zap.Int("count", w.workerCount))

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *SQSWorker) Stop() {
	w.logger.Info("Stopping SQS workers...")
	close(w.shutdownChan)
	w.cancel()
	w.waitGroup.Wait()
	w.logger.Info("All SQS workers stopped")
}

func (w *SQSWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(w.ctx); err != nil && w.ctx.Err() == nil {
				w.logger.Error("Failed to process messages", err, zap.Int("worker_id", workerID))
			}
		}
	}
}

func (w *SQSWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		w.logger.Debug("Processing message",
			zap.String("type", string(msg.Message.Type)),
			zap.String("user_id", msg.Message.OwnerID))

		if err := w.handler.Handle(ctx, msg.Message); err != nil {
			w.logger.Error("Failed to process message", err,
				zap.String("type", string(msg.Message.Type)),
				zap.String("user_id", msg.Message.OwnerID))
			continue
		}

		// Only delete the message if processing was successful
		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return nil
}
