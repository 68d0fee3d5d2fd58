package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type StatementService interface {
	ScheduleExport(ctx context.Context, ownerID, month string) (time.Time, error)
	DownloadURL(ctx context.Context, ownerID, month string) (string, error)
}

type StatementHandler struct {
	*BaseHandler
	service StatementService
}

func NewStatementHandler(service StatementService, logger *logger.Logger) *StatementHandler {
	return &StatementHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// ExportStatement godoc
// @Summary Export a monthly statement
// @Description Queue a CSV export of the month's ledger entries
// @Tags statements
// @Accept json
// @Produce json
// @Param body body dto.StatementRequest true "Month in YYYY-MM form"
// @Success 202 {object} dto.StatementResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /statements [post]
func (h *StatementHandler) ExportStatement(c *gin.Context) {
	var req dto.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	month, err := h.service.ScheduleExport(h.RequestCtx(c), h.OwnerID(c), req.Month)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.StatementResponse{Month: month.Format("2006-01"), Status: "queued"})
}

// GetStatement godoc
// @Summary Download a monthly statement
// @Description Get a short-lived download link for an exported statement
// @Tags statements
// @Produce json
// @Param month path string true "Month in YYYY-MM form"
// @Success 200 {object} dto.StatementURLResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /statements/{month} [get]
func (h *StatementHandler) GetStatement(c *gin.Context) {
	month := c.Param("month")

	url, err := h.service.DownloadURL(h.RequestCtx(c), h.OwnerID(c), month)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatementURLResponse{Month: month, URL: url})
}
