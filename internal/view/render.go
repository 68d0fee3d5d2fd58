package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fragment names pushed to live dashboards.
const (
	FragmentSummaryCards  = "summary_cards"
	FragmentAttentionList = "attention_list"
	FragmentActivityList  = "activity_list"
)

// AuthPage backs the login and signup pages.
type AuthPage struct {
	Email string
	Error string
}

// DashboardPage backs the dashboard page.
type DashboardPage struct {
	Email       string
	TrialEndsAt string
	Summary     *domain.DashboardSummary
	Error       string
	StreamPath  string
}

// TenantsPage backs the tenant list.
type TenantsPage struct {
	Tenants   []domain.Tenant
	LoadError bool
	Error     string
	Notice    string
}

// TenantFormPage backs the create/edit form and its consent step.
type TenantFormPage struct {
	EditingID    string
	Name         string
	MonthlyRent  string
	RentDueDay   int
	Status       string
	HasElectric  bool
	HasWater     bool
	HasWifi      bool
	Notes        string
	NeedsConsent bool
	Error        string
	Statuses     []domain.TenantStatus
}

// IsEdit reports whether the form edits an existing tenant.
func (p TenantFormPage) IsEdit() bool {
	return p.EditingID != ""
}

// Renderer executes the embedded page and fragment templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Funcs exposes the formatting helpers to templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"peso":         FormatPeso,
		"signedAmount": SignedAmount,
		"amountClass":  AmountClass,
		"statusLabel":  StatusLabel,
		"statusClass":  StatusClass,
		"ordinal":      Ordinal,
		"utilityIcons": UtilityIcons,
		"attention":    AttentionMessage,
		"date":         FormatDate,
	}
}

// Template is the parsed template set, for gin's HTML renderer.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// Fragment renders a named template into a string.
func (r *Renderer) Fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DashboardFragments renders every live panel of a summary.
func (r *Renderer) DashboardFragments(summary *domain.DashboardSummary) (map[string]string, error) {
	fragments := make(map[string]string, 3)
	for _, name := range []string{FragmentSummaryCards, FragmentAttentionList, FragmentActivityList} {
		html, err := r.Fragment(name, summary)
		if err != nil {
			return nil, err
		}
		fragments[name] = html
	}
	return fragments, nil
}
