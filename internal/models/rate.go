package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate mirrors the current_rates table. currency_code carries a unique
// constraint; version backs the optimistic concurrency check on updates.
type CurrencyRate struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currencyCode"`
	CurrencyName     string          `json:"currencyName"`
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Version          int64           `json:"version"`
}

// RateHistory mirrors the rate_history table. Append-only.
type RateHistory struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
