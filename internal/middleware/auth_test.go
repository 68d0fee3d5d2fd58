package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/utils"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	resolver   *MockSessionResolver
	middleware *AuthMiddleware
	router     *gin.Engine
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.resolver = new(MockSessionResolver)
	cfg := &config.Config{SessionExpirationHours: 24}
	s.middleware = NewAuthMiddleware(s.resolver, cfg, logger.NewNop())

	s.router = gin.New()
	s.router.Use(s.middleware.Authenticate())

	ok := func(c *gin.Context) {
		ownerID, err := utils.GetOwnerIDFromContext(c.Request.Context())
		if err != nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, ownerID)
	}

	s.router.GET("/login", s.middleware.RedirectIfAuthenticated(), ok)
	s.router.GET("/dashboard", s.middleware.RequirePageSession(), ok)
	s.router.GET("/api/v1/tenants", s.middleware.RequireSession(), ok)
}

func (s *AuthMiddlewareTestSuite) serve(path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func withCookie(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
}

func (s *AuthMiddlewareTestSuite) validSession() {
	s.resolver.On("GetSession", mock.Anything, "good-token").
		Return(&domain.Session{ID: "sid", UserID: "owner-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)
}

func (s *AuthMiddlewareTestSuite) TestPageWithoutSessionRedirectsToLogin() {
	w := s.serve("/dashboard", nil)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
	s.resolver.AssertNotCalled(s.T(), "GetSession", mock.Anything, mock.Anything)
}

func (s *AuthMiddlewareTestSuite) TestPageWithSession() {
	s.validSession()

	w := s.serve("/dashboard", withCookie("good-token"))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("owner-1", w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestLoginWithSessionRedirectsToDashboard() {
	s.validSession()

	w := s.serve("/login", withCookie("good-token"))

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/dashboard", w.Header().Get("Location"))
}

func (s *AuthMiddlewareTestSuite) TestLoginWithoutSession() {
	w := s.serve("/login", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("anonymous", w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestAPIWithoutSessionIs401() {
	s.resolver.On("GetSession", mock.Anything, "revoked").Return(nil, service.ErrNoSession)

	w := s.serve("/api/v1/tenants", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer revoked")
	})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestAPIWithBearerToken() {
	s.validSession()

	w := s.serve("/api/v1/tenants", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer good-token")
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("owner-1", w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestAuthBackendFailureIsTreatedAsNoSession() {
	s.resolver.On("GetSession", mock.Anything, "good-token").
		Return(nil, &service.AuthError{Op: "get_session", Err: errors.New("redis down")})

	w := s.serve("/dashboard", withCookie("good-token"))

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *AuthMiddlewareTestSuite) TestSessionCookieRoundTrip() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	s.middleware.SetSessionCookie(c, &domain.Session{Token: "tok"})

	cookies := w.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(SessionCookieName, cookies[0].Name)
	s.Equal("tok", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
	s.Equal(24*60*60, cookies[0].MaxAge)
}

func TestTokenFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name     string
		mutate   func(*http.Request)
		expected string
	}{
		{"none", func(*http.Request) {}, ""},
		{"cookie", withCookie("c-token"), "c-token"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer b-token") }, "b-token"},
		{"malformed", func(r *http.Request) { r.Header.Set("Authorization", "Token x") }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tc.mutate(c.Request)

			if got := TokenFromRequest(c); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
