package view

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

type RendererTestSuite struct {
	suite.Suite
	renderer *Renderer
}

func TestRenderer(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) SetupSuite() {
	renderer, err := NewRenderer()
	s.Require().NoError(err)
	s.renderer = renderer
}

func (s *RendererTestSuite) render(name string, data any) string {
	var sb strings.Builder
	s.Require().NoError(s.renderer.Render(&sb, name, data))
	return sb.String()
}

func (s *RendererTestSuite) TestDashboardEmptyStates() {
	summary := &domain.DashboardSummary{}

	fragments, err := s.renderer.DashboardFragments(summary)

	s.Require().NoError(err)
	s.Contains(fragments[FragmentAttentionList], "No issues found. All tenants are up to date.")
	s.Contains(fragments[FragmentActivityList], "No recent activity")
	s.Contains(fragments[FragmentSummaryCards], "₱0.00")
}

func (s *RendererTestSuite) TestDashboardPanels() {
	summary := &domain.DashboardSummary{
		MonthlyRentTotal:  decimal.RequireFromString("25000"),
		ActiveTenantCount: 2,
		NeedsAttention:    []domain.Tenant{{Name: "Ana", RentDueDay: 5}},
		RecentActivity: []domain.ActivityRow{
			{TenantName: "Ana", Amount: decimal.RequireFromString("10000"), Type: domain.LedgerPayment, Category: "rent", CreatedAt: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
			{TenantName: "Unknown", Amount: decimal.RequireFromString("350"), Type: domain.LedgerCharge, Category: "water", CreatedAt: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
		},
	}

	html := s.render("dashboard.html", DashboardPage{Summary: summary, StreamPath: "/dashboard/stream"})

	s.Contains(html, "₱25,000.00")
	s.Contains(html, "<strong>Ana</strong> - Rent overdue since 5th")
	s.Contains(html, `activity-amount text-green-600">&#43;₱10,000.00`)
	s.Contains(html, `activity-amount text-blue-600">-₱350.00`)
	s.Contains(html, "rent payment")
	s.Contains(html, "<strong>Unknown</strong>")
	s.Contains(html, "10/03/2026")
	s.NotContains(html, "No recent activity")
}

func (s *RendererTestSuite) TestDashboardError() {
	html := s.render("dashboard.html", DashboardPage{Error: "Error loading dashboard"})

	s.Contains(html, `role="alert">Error loading dashboard`)
	s.NotContains(html, `id="summaryCards"`)
}

func (s *RendererTestSuite) TestTenantsEmptyAndError() {
	empty := s.render("tenants.html", TenantsPage{})
	s.Contains(empty, `No tenants yet. Click "Add New Tenant" to get started.`)

	failed := s.render("tenants.html", TenantsPage{LoadError: true})
	s.Contains(failed, `<tr><td colspan="6">Error loading tenants</td></tr>`)
}

func (s *RendererTestSuite) TestTenantsTableAndCards() {
	page := TenantsPage{Tenants: []domain.Tenant{
		{ID: "t1", Name: "Ana <script>", MonthlyRent: decimal.RequireFromString("12500.5"), RentDueDay: 2, Status: domain.TenantMovedOut, HasElectric: true, HasWater: true},
	}}

	html := s.render("tenants.html", page)

	s.Contains(html, "Ana &lt;script&gt;")
	s.NotContains(html, "Ana <script>")
	s.Contains(html, "₱12,500.50")
	s.Contains(html, "2nd")
	s.Contains(html, `status-pill status-moved">Moved Out`)
	s.Contains(html, "⚡")
	s.Contains(html, "💧")
	s.NotContains(html, `<span class="utility-icon">📶`)
	s.Contains(html, `href="/tenants/t1/edit"`)
	s.Equal(2, strings.Count(html, `action="/tenants/t1/delete"`))
}

func (s *RendererTestSuite) TestTenantFormConsentStep() {
	page := TenantFormPage{Name: "Ana", Statuses: domain.ValidTenantStatuses, Status: "active", NeedsConsent: true}

	html := s.render("tenant_form.html", page)

	s.Contains(html, "Add New Tenant")
	s.Contains(html, `id="consentModal"`)
	s.Contains(html, `action="/tenants"`)
	s.Contains(html, `<option value="active" selected>Active</option>`)
}

func (s *RendererTestSuite) TestTenantFormEdit() {
	page := TenantFormPage{EditingID: "t1", Name: "Ana", Statuses: domain.ValidTenantStatuses, Status: "moved_out", HasWifi: true}

	html := s.render("tenant_form.html", page)

	s.Contains(html, "Edit Tenant")
	s.Contains(html, `action="/tenants/t1"`)
	s.NotContains(html, `id="consentModal"`)
	s.Contains(html, `<option value="moved_out" selected>Moved Out</option>`)
	s.Contains(html, `name="has_wifi" value="true" checked`)
}

func (s *RendererTestSuite) TestAuthPages() {
	login := s.render("login.html", AuthPage{Error: "Invalid email or password", Email: "a@b.c"})
	s.Contains(login, "Invalid email or password")
	s.Contains(login, `value="a@b.c"`)

	signup := s.render("signup.html", AuthPage{Error: "Passwords do not match"})
	s.Contains(signup, "Passwords do not match")
	s.Contains(signup, `name="confirm_password"`)
}
