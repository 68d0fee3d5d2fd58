package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/utils"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type BaseHandler struct {
	logger *logger.Logger
}

func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// OwnerID returns the signed-in owner. The auth middleware guarantees one on
// protected routes.
func (h *BaseHandler) OwnerID(ginCtx *gin.Context) string {
	ownerID, _ := utils.GetOwnerIDFromContext(h.RequestCtx(ginCtx))
	return ownerID
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	var validationErr *service.ValidationError
	var authErr *service.AuthError

	switch {
	case errors.As(err, &validationErr), errors.Is(err, service.ErrConsentRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTenantNotFound), errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrInvalidCredentials), errors.As(err, &authErr):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message is the text shown to the user for a service error. Store and
// unexpected failures are not echoed back.
func Message(err error) string {
	var authErr *service.AuthError
	switch status := StatusFor(err); {
	case errors.As(err, &authErr):
		return "Authentication is unavailable, please try again"
	case status == http.StatusInternalServerError:
		return "Something went wrong, please try again"
	default:
		return err.Error()
	}
}

// RespondError logs err and writes it as a JSON error.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", err, zap.String("path", c.FullPath()))
	} else {
		h.logger.Debug("Request rejected", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, dto.Error{Error: Message(err)})
}
