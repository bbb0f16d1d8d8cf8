package dto

import (
	"github.com/fxtracker/currency_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// timestampLayout is the wire format for updated_at fields, rendered in UTC.
const timestampLayout = "2006-01-02 15:04:05"

// UpdateRateRequest defines the payload accepted by POST /api/update-rate.
// Rate is a pointer so a missing field fails the required binding instead of
// arriving as a zero decimal. currency_name is only used when the update
// creates a brand-new currency.
type UpdateRateRequest struct {
	CurrencyCode string           `json:"currency_code" binding:"required,currencycode"`
	Rate         *decimal.Decimal `json:"rate" binding:"required"`
	CurrencyName string           `json:"currency_name"`
}

// CurrencyRateResponse defines the API shape of a current rate.
type CurrencyRateResponse struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currency_code"`
	CurrencyName     string          `json:"currency_name"`
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"change_percentage"`
	UpdatedAt        string          `json:"updated_at"`
}

// RateHistoryResponse defines the API shape of one archived rate snapshot.
type RateHistoryResponse struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currency_code"`
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"change_percentage"`
	UpdatedAt        string          `json:"updated_at"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its API shape
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		ID:               rate.ID,
		CurrencyCode:     rate.CurrencyCode,
		CurrencyName:     rate.CurrencyName,
		Rate:             rate.Rate,
		ChangePercentage: rate.ChangePercentage,
		UpdatedAt:        rate.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ToListCurrencyRateResponse converts a slice of domain.CurrencyRate to API shapes.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	responses := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToCurrencyRateResponse(&rates[i])
	}
	return responses
}

// ToRateHistoryResponse converts a domain.RateHistory to its API shape
func ToRateHistoryResponse(entry *domain.RateHistory) RateHistoryResponse {
	return RateHistoryResponse{
		ID:               entry.ID,
		CurrencyCode:     entry.CurrencyCode,
		Rate:             entry.Rate,
		ChangePercentage: entry.ChangePercentage,
		UpdatedAt:        entry.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ToListRateHistoryResponse converts a slice of domain.RateHistory to API shapes.
func ToListRateHistoryResponse(entries []domain.RateHistory) []RateHistoryResponse {
	responses := make([]RateHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = ToRateHistoryResponse(&entries[i])
	}
	return responses
}
