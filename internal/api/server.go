package api

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rent-dashboard/internal/middleware"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const DashboardStreamPath = "/api/v1/dashboard/stream"

// Services groups what the handlers depend on.
type Services struct {
	Auth       AuthService
	Tenants    TenantService
	Dashboard  DashboardService
	Statements StatementService
}

type Server struct {
	auth        *AuthHandler
	tenant      *TenantHandler
	dashboard   *DashboardHandler
	statement   *StatementHandler
	page        *PageHandler
	websocket   *WebSocketHandler
	templates   *template.Template
	authMW      *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
	globalLimit int
}

func NewServer(
	services Services,
	websocket *WebSocketHandler,
	templates *template.Template,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	globalLimit int,
	logger *logger.Logger,
) *Server {
	return &Server{
		auth:        NewAuthHandler(services.Auth, auth, logger),
		tenant:      NewTenantHandler(services.Tenants, logger),
		dashboard:   NewDashboardHandler(services.Dashboard, logger),
		statement:   NewStatementHandler(services.Statements, logger),
		page:        NewPageHandler(services.Auth, services.Tenants, services.Dashboard, auth, DashboardStreamPath, logger),
		websocket:   websocket,
		templates:   templates,
		authMW:      auth,
		rateLimit:   rateLimit,
		validation:  validation,
		globalLimit: globalLimit,
	}
}

func (s *Server) SetupRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(s.templates)

	// Apply security middleware first
	router.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	router.Use(s.validation.ValidateContentType("application/json", "application/x-www-form-urlencoded"))
	router.Use(s.validation.SanitizeInput())

	// Apply global rate limiting
	router.Use(s.rateLimit.GlobalRateLimit(s.globalLimit))
	router.Use(s.authMW.Authenticate())

	router.GET("/", s.page.Home)

	guest := router.Group("", s.authMW.RedirectIfAuthenticated())
	{
		guest.GET("/login", s.page.LoginPage)
		guest.POST("/login", s.page.Login)
		guest.GET("/signup", s.page.SignupPage)
		guest.POST("/signup", s.page.Signup)
	}

	pages := router.Group("", s.authMW.RequirePageSession(), s.rateLimit.OwnerRateLimit())
	{
		pages.POST("/logout", s.page.Logout)
		pages.GET("/dashboard", s.page.Dashboard)
		pages.GET("/tenants", s.page.Tenants)
		pages.GET("/tenants/new", s.page.NewTenant)
		pages.POST("/tenants", s.page.CreateTenant)
		pages.GET("/tenants/:id/edit", s.page.EditTenant)
		pages.POST("/tenants/:id", s.page.UpdateTenant)
		pages.POST("/tenants/:id/delete", s.page.DeleteTenant)
	}

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", s.auth.SignUp)
			auth.POST("/login", s.auth.SignIn)
			auth.POST("/logout", s.authMW.RequireSession(), s.auth.SignOut)
			auth.GET("/session", s.authMW.RequireSession(), s.auth.GetSession)
		}

		tenants := api.Group("/tenants", s.authMW.RequireSession(), s.rateLimit.OwnerRateLimit())
		{
			tenants.GET("", s.tenant.ListTenants)
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("/search", s.tenant.SearchTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		dashboard := api.Group("/dashboard", s.authMW.RequireSession(), s.rateLimit.OwnerRateLimit())
		{
			dashboard.GET("", s.dashboard.GetDashboard)
			dashboard.GET("/stream", s.websocket.HandleWebSocket)
		}

		statements := api.Group("/statements", s.authMW.RequireSession(), s.rateLimit.OwnerRateLimit())
		{
			statements.POST("", s.statement.ExportStatement)
			statements.GET("/:month", s.statement.GetStatement)
		}
	}
}

// StartWebSocketHub starts the hub of live dashboards
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
