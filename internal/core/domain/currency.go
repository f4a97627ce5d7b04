package domain

// Currency represents a display currency managed by the user.
// Amounts are never converted between currencies; code and symbol are
// labels used for formatting only.
type Currency struct {
	CurrencyID string `json:"id"`
	Code       string `json:"code"`   // 3-letter code, e.g. "USD"
	Name       string `json:"name"`   // e.g. "US Dollar"
	Symbol     string `json:"symbol"` // e.g. "$"
	IsDefault  bool   `json:"isDefault"`
}

// DefaultCurrencies is the seed set used when no currency document has been
// persisted yet. At least one currency must exist for expense and budget
// forms to function.
var DefaultCurrencies = []Currency{
	{CurrencyID: "usd", Code: "USD", Name: "US Dollar", Symbol: "$", IsDefault: true},
	{CurrencyID: "birr", Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br", IsDefault: false},
}

// FallbackSymbol is used when an amount references a currency that no longer
// exists (currencies can be deleted while budgets/expenses still point at them).
const FallbackSymbol = "$"
