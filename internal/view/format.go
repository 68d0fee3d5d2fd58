package view

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

const (
	currencySymbol = "₱"
	dateLayout     = "01/02/2006"

	classPayment = "text-green-600"
	classCharge  = "text-blue-600"
)

var pesoPrinter = message.NewPrinter(language.Make("en-PH"))

// FormatPeso renders an amount as pesos with en-PH digit grouping and
// exactly two fraction digits, e.g. ₱25,000.00.
func FormatPeso(amount decimal.Decimal) string {
	amount = amount.Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol, pesoPrinter.Sprintf("%v", number.Decimal(whole.IntPart())), cents)
}

// SignedAmount prefixes payments with + and every other entry with -.
func SignedAmount(row domain.ActivityRow) string {
	if row.Type == domain.LedgerPayment {
		return "+" + FormatPeso(row.Amount.Abs())
	}
	return "-" + FormatPeso(row.Amount.Abs())
}

// AmountClass is the colour class of an activity amount.
func AmountClass(row domain.ActivityRow) string {
	if row.Type == domain.LedgerPayment {
		return classPayment
	}
	return classCharge
}

// StatusLabel is the human label of a tenant status. Unknown values are shown as is.
func StatusLabel(status domain.TenantStatus) string {
	switch status {
	case domain.TenantActive:
		return "Active"
	case domain.TenantMovedOut:
		return "Moved Out"
	case domain.TenantLeftWithoutNotice:
		return "Left Without Notice"
	default:
		return string(status)
	}
}

// StatusClass is the badge class of a tenant status.
func StatusClass(status domain.TenantStatus) string {
	switch status {
	case domain.TenantActive:
		return "status-active"
	case domain.TenantMovedOut:
		return "status-moved"
	case domain.TenantLeftWithoutNotice:
		return "status-left"
	default:
		return ""
	}
}

// Ordinal renders 1 as 1st, 2 as 2nd, 11 as 11th and so on.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// UtilityIcons lists the markers of the utilities a tenant has.
func UtilityIcons(t domain.Tenant) []string {
	icons := make([]string, 0, 3)
	if t.HasElectric {
		icons = append(icons, "⚡")
	}
	if t.HasWater {
		icons = append(icons, "💧")
	}
	if t.HasWifi {
		icons = append(icons, "📶")
	}
	return icons
}

// AttentionMessage is the line shown for an overdue tenant.
func AttentionMessage(t domain.Tenant) string {
	return fmt.Sprintf("%s - Rent overdue since %s", t.Name, Ordinal(t.RentDueDay))
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
