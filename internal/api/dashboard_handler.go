package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type DashboardService interface {
	Summary(ctx context.Context, ownerID string, now time.Time) (*domain.DashboardSummary, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
	now     func() time.Time
}

func NewDashboardHandler(service DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		now:         time.Now,
	}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Rent, utilities and payment totals, recent activity and overdue tenants
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.service.Summary(h.RequestCtx(c), h.OwnerID(c), h.now())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSummary(summary))
}
