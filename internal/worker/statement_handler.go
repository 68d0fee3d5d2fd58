package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/rent-dashboard/internal/service/queue"
)

// StatementExporter writes the monthly statement of an owner.
type StatementExporter interface {
	Export(ctx context.Context, ownerID string, month time.Time) (string, error)
}

type StatementHandler struct {
	exporter StatementExporter
}

func NewStatementHandler(exporter StatementExporter) *StatementHandler {
	return &StatementHandler{exporter: exporter}
}

func (h *StatementHandler) Handle(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeStatement {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	if msg.OwnerID == "" || msg.Month.IsZero() {
		return fmt.Errorf("incomplete %s message", msg.Type)
	}

	_, err := h.exporter.Export(ctx, msg.OwnerID, msg.Month)
	return err
}
