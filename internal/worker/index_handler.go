package worker

import (
	"context"
	"fmt"

	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/internal/service/queue"
)

// IndexHandler keeps the tenant search index in step with the tenants table.
type IndexHandler struct {
	search repository.SearchRepository
}

func NewIndexHandler(search repository.SearchRepository) *IndexHandler {
	return &IndexHandler{search: search}
}

func (h *IndexHandler) Handle(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeIndexTenant:
		if msg.Tenant == nil {
			return fmt.Errorf("missing tenant for %s message", msg.Type)
		}
		return h.search.IndexTenant(ctx, msg.Tenant)

	case queue.MessageTypeDeleteTenant:
		if msg.TenantID == "" {
			return fmt.Errorf("missing tenant id for %s message", msg.Type)
		}
		return h.search.DeleteTenant(ctx, msg.OwnerID, msg.TenantID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
