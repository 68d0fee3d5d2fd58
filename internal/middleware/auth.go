package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/utils"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const (
	SessionCookieName = "session"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SessionResolver turns a session token into a session.
type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*domain.Session, error)
}

type AuthMiddleware struct {
	resolver SessionResolver
	config   *config.Config
	logger   *logger.Logger
}

func NewAuthMiddleware(resolver SessionResolver, config *config.Config, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		config:   config,
		logger:   logger,
	}
}

// Authenticate resolves the request's session token, if any, and stores the
// session in the request context. It never aborts.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := m.resolver.GetSession(c.Request.Context(), token)
		if err != nil {
			var authErr *service.AuthError
			if errors.As(err, &authErr) {
				m.logger.Error("Session lookup failed", err)
			}
			c.Next()
			return
		}

		c.Set(string(utils.SessionKey), session)
		c.Set(string(utils.OwnerIDKey), session.UserID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), utils.SessionKey, session))
		c.Next()
	}
}

// RequireSession answers 401 to API calls without a valid session.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := utils.GetSessionFromContext(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequirePageSession sends visitors without a valid session to the login page.
func (m *AuthMiddleware) RequirePageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := utils.GetSessionFromContext(c.Request.Context()); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends signed-in owners away from login and signup.
func (m *AuthMiddleware) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := utils.GetSessionFromContext(c.Request.Context()); err == nil {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie hands the session token to the browser.
func (m *AuthMiddleware) SetSessionCookie(c *gin.Context, session *domain.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, session.Token, int(m.config.SessionTTL().Seconds()), "/", "", m.config.SessionCookieSecure, true)
}

func (m *AuthMiddleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.config.SessionCookieSecure, true)
}

// TokenFromRequest reads the session token from the session cookie or a
// Bearer authorization header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		return ""
	}
	return bearerToken[1]
}
