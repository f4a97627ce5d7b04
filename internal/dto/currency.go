package dto

import (
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code      string `json:"code" binding:"required,uppercase,len=3"`
	Name      string `json:"name" binding:"required"`
	Symbol    string `json:"symbol" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateCurrencyRequest carries an optional-field patch for a currency.
type UpdateCurrencyRequest struct {
	Code      *string `json:"code,omitempty" binding:"omitempty,uppercase,len=3"`
	Name      *string `json:"name,omitempty"`
	Symbol    *string `json:"symbol,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	IsDefault  bool   `json:"isDefault"`
}

// DeleteCurrencyResponse reports whether the deletion was applied. Deleting
// the default currency is refused without error.
type DeleteCurrencyResponse struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: c.CurrencyID,
		Code:       c.Code,
		Name:       c.Name,
		Symbol:     c.Symbol,
		IsDefault:  c.IsDefault,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
