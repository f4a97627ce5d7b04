package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// Display layouts shared by the document exporters.
const (
	DateLayout      = "Jan 02, 2006"
	TimestampLayout = "Jan 02, 2006 15:04"
	FileDateLayout  = "20060102"
)

// FormatAmount renders an amount with its currency symbol and code, e.g.
// "$1500 USD". A nil currency (deleted or never existed) falls back to the
// default display symbol with no code.
func FormatAmount(amount decimal.Decimal, currency *domain.Currency) string {
	if currency == nil {
		return domain.FallbackSymbol + amount.String()
	}
	return currency.Symbol + amount.String() + " " + currency.Code
}

// CapitalizeStatus renders a workflow status for display, e.g. "Approved".
func CapitalizeStatus(status domain.ExpenseStatus) string {
	s := string(status)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// OrNA substitutes "N/A" for an empty display value.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
