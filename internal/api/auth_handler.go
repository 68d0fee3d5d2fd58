package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/middleware"
	"github.com/kingrain94/rent-dashboard/internal/utils"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password, confirmPassword string) (*domain.Profile, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	StartSession(ctx context.Context, ownerID string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Profile(ctx context.Context, ownerID string) (*domain.Profile, error)
}

// SessionCookies writes and clears the browser session cookie.
type SessionCookies interface {
	SetSessionCookie(c *gin.Context, session *domain.Session)
	ClearSessionCookie(c *gin.Context)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
	cookies SessionCookies
	now     func() time.Time
}

func NewAuthHandler(service AuthService, cookies SessionCookies, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		cookies:     cookies,
		now:         time.Now,
	}
}

// SignUp godoc
// @Summary Create a landlord account
// @Description Create an account with a trial period and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	profile, err := h.service.SignUp(ctx, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	session, err := h.service.StartSession(ctx, profile.ID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.cookies.SetSessionCookie(c, session)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: session.Token, UserID: session.UserID, ExpiresAt: session.ExpiresAt})
}

// SignIn godoc
// @Summary Sign in
// @Description Verify email and password and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	session, err := h.service.SignIn(h.RequestCtx(c), req.Email, req.Password)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.cookies.SetSessionCookie(c, session)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: session.Token, UserID: session.UserID, ExpiresAt: session.ExpiresAt})
}

// SignOut godoc
// @Summary Sign out
// @Description End the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.service.SignOut(h.RequestCtx(c), middleware.TokenFromRequest(c)); err != nil {
		h.RespondError(c, err)
		return
	}

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Signed out"})
}

// GetSession godoc
// @Summary Current session
// @Description Get the signed-in owner and their trial status
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	ctx := h.RequestCtx(c)
	session, err := utils.GetSessionFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Authentication required"})
		return
	}

	profile, err := h.service.Profile(ctx, session.UserID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSession(session, profile, h.now()))
}
