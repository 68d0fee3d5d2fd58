package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/middleware"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/view"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const (
	pageLogin      = "login.html"
	pageSignup     = "signup.html"
	pageDashboard  = "dashboard.html"
	pageTenants    = "tenants.html"
	pageTenantForm = "tenant_form.html"

	tenantsPath = "/tenants"
)

// PageHandler serves the server-rendered pages. Templates are looked up by
// file name in the engine's HTML template set.
type PageHandler struct {
	*BaseHandler
	auth       AuthService
	tenants    TenantService
	dashboard  DashboardService
	cookies    SessionCookies
	streamPath string
	now        func() time.Time
}

func NewPageHandler(
	auth AuthService,
	tenants TenantService,
	dashboard DashboardService,
	cookies SessionCookies,
	streamPath string,
	logger *logger.Logger,
) *PageHandler {
	return &PageHandler{
		BaseHandler: NewBaseHandler(logger),
		auth:        auth,
		tenants:     tenants,
		dashboard:   dashboard,
		cookies:     cookies,
		streamPath:  streamPath,
		now:         time.Now,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageLogin, view.AuthPage{})
}

func (h *PageHandler) Login(c *gin.Context) {
	email := c.PostForm("email")

	session, err := h.auth.SignIn(h.RequestCtx(c), email, c.PostForm("password"))
	if err != nil {
		h.logFailure(c, err)
		c.HTML(StatusFor(err), pageLogin, view.AuthPage{Email: email, Error: pageMessage(err)})
		return
	}

	h.cookies.SetSessionCookie(c, session)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

func (h *PageHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageSignup, view.AuthPage{})
}

func (h *PageHandler) Signup(c *gin.Context) {
	email := c.PostForm("email")
	ctx := h.RequestCtx(c)

	profile, err := h.auth.SignUp(ctx, email, c.PostForm("password"), c.PostForm("confirm_password"))
	if err != nil {
		h.logFailure(c, err)
		c.HTML(StatusFor(err), pageSignup, view.AuthPage{Email: email, Error: pageMessage(err)})
		return
	}

	session, err := h.auth.StartSession(ctx, profile.ID)
	if err != nil {
		// The account exists; let the owner sign in normally.
		h.logFailure(c, err)
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}

	h.cookies.SetSessionCookie(c, session)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

func (h *PageHandler) Logout(c *gin.Context) {
	if err := h.auth.SignOut(h.RequestCtx(c), middleware.TokenFromRequest(c)); err != nil {
		h.logFailure(c, err)
	}
	h.cookies.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	ctx := h.RequestCtx(c)
	ownerID := h.OwnerID(c)
	page := view.DashboardPage{StreamPath: h.streamPath}

	profile, err := h.auth.Profile(ctx, ownerID)
	if err != nil {
		h.logFailure(c, err)
	} else {
		page.Email = profile.Email
		page.TrialEndsAt = view.FormatDate(profile.TrialEndsAt)
	}

	summary, err := h.dashboard.Summary(ctx, ownerID, h.now())
	if err != nil {
		h.logFailure(c, err)
		page.Error = "Failed to load dashboard data"
		c.HTML(http.StatusOK, pageDashboard, page)
		return
	}

	page.Summary = summary
	c.HTML(http.StatusOK, pageDashboard, page)
}

func (h *PageHandler) Tenants(c *gin.Context) {
	h.renderTenants(c, http.StatusOK, view.TenantsPage{Notice: c.Query("notice")})
}

func (h *PageHandler) NewTenant(c *gin.Context) {
	c.HTML(http.StatusOK, pageTenantForm, view.TenantFormPage{
		Status:   string(domain.TenantActive),
		Statuses: domain.ValidTenantStatuses,
	})
}

func (h *PageHandler) EditTenant(c *gin.Context) {
	tenant, err := h.tenants.Get(h.RequestCtx(c), c.Param("id"), h.OwnerID(c))
	if err != nil {
		h.logFailure(c, err)
		h.renderTenants(c, StatusFor(err), view.TenantsPage{Error: pageMessage(err)})
		return
	}

	c.HTML(http.StatusOK, pageTenantForm, tenantFormPage(tenant))
}

func (h *PageHandler) CreateTenant(c *gin.Context) {
	h.saveTenant(c, "")
}

func (h *PageHandler) UpdateTenant(c *gin.Context) {
	h.saveTenant(c, c.Param("id"))
}

func (h *PageHandler) DeleteTenant(c *gin.Context) {
	if err := h.tenants.Delete(h.RequestCtx(c), c.Param("id"), h.OwnerID(c)); err != nil {
		h.logFailure(c, err)
		h.renderTenants(c, StatusFor(err), view.TenantsPage{Error: pageMessage(err)})
		return
	}

	c.Redirect(http.StatusSeeOther, tenantsPath+"?notice=Tenant+deleted")
}

func (h *PageHandler) saveTenant(c *gin.Context, editingID string) {
	page := tenantFormFromRequest(c, editingID)
	form, err := parseTenantForm(c, editingID)
	if err != nil {
		page.Error = pageMessage(err)
		c.HTML(http.StatusBadRequest, pageTenantForm, page)
		return
	}

	if _, err := h.tenants.Save(h.RequestCtx(c), h.OwnerID(c), form); err != nil {
		if errors.Is(err, service.ErrConsentRequired) {
			page.NeedsConsent = true
			c.HTML(http.StatusOK, pageTenantForm, page)
			return
		}
		h.logFailure(c, err)
		page.Error = pageMessage(err)
		c.HTML(StatusFor(err), pageTenantForm, page)
		return
	}

	notice := "Tenant+saved"
	if editingID != "" {
		notice = "Tenant+updated"
	}
	c.Redirect(http.StatusSeeOther, tenantsPath+"?notice="+notice)
}

func (h *PageHandler) renderTenants(c *gin.Context, status int, page view.TenantsPage) {
	tenants, err := h.tenants.List(h.RequestCtx(c), h.OwnerID(c))
	if err != nil {
		h.logFailure(c, err)
		page.LoadError = true
	}
	page.Tenants = tenants
	c.HTML(status, pageTenants, page)
}

func (h *PageHandler) logFailure(c *gin.Context, err error) {
	if StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error("Page request failed", err, zap.String("path", c.FullPath()))
		return
	}
	h.logger.Debug("Page request rejected", zap.String("path", c.FullPath()), zap.Error(err))
}

// pageMessage is the alert text for a failed page action.
func pageMessage(err error) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return Message(err)
}

func parseTenantForm(c *gin.Context, editingID string) (service.TenantForm, error) {
	rent, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("monthly_rent")))
	if err != nil {
		return service.TenantForm{}, &service.ValidationError{Field: "monthly_rent", Message: "Monthly rent must be a number"}
	}

	dueDay, err := strconv.Atoi(strings.TrimSpace(c.PostForm("rent_due_day")))
	if err != nil {
		return service.TenantForm{}, &service.ValidationError{Field: "rent_due_day", Message: "Rent due day must be a whole number"}
	}

	return service.TenantForm{
		EditingID: editingID,
		Input: service.TenantInput{
			Name:        c.PostForm("name"),
			MonthlyRent: rent,
			RentDueDay:  dueDay,
			Status:      c.PostForm("status"),
			HasElectric: checked(c, "has_electric"),
			HasWater:    checked(c, "has_water"),
			HasWifi:     checked(c, "has_wifi"),
			Notes:       c.PostForm("notes"),
		},
		ConsentConfirmed: checked(c, "consent"),
	}, nil
}

// tenantFormFromRequest echoes the submitted values back into the form.
func tenantFormFromRequest(c *gin.Context, editingID string) view.TenantFormPage {
	dueDay, _ := strconv.Atoi(c.PostForm("rent_due_day"))
	return view.TenantFormPage{
		EditingID:   editingID,
		Name:        c.PostForm("name"),
		MonthlyRent: c.PostForm("monthly_rent"),
		RentDueDay:  dueDay,
		Status:      c.PostForm("status"),
		HasElectric: checked(c, "has_electric"),
		HasWater:    checked(c, "has_water"),
		HasWifi:     checked(c, "has_wifi"),
		Notes:       c.PostForm("notes"),
		Statuses:    domain.ValidTenantStatuses,
	}
}

func tenantFormPage(t *domain.Tenant) view.TenantFormPage {
	return view.TenantFormPage{
		EditingID:   t.ID,
		Name:        t.Name,
		MonthlyRent: t.MonthlyRent.StringFixed(2),
		RentDueDay:  t.RentDueDay,
		Status:      string(t.Status),
		HasElectric: t.HasElectric,
		HasWater:    t.HasWater,
		HasWifi:     t.HasWifi,
		Notes:       t.Notes,
		Statuses:    domain.ValidTenantStatuses,
	}
}

func checked(c *gin.Context, field string) bool {
	switch c.PostForm(field) {
	case "true", "on", "1":
		return true
	}
	return false
}
