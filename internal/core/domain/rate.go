package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate represents the latest known exchange value for a currency code.
// There is at most one CurrencyRate per code; codes are stored lower-case.
type CurrencyRate struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currencyCode"` // Unique key, e.g. "usd"
	CurrencyName     string          `json:"currencyName"` // Display label, may be empty
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"changePercentage"` // Signed delta vs the superseded rate, 0 on creation
	UpdatedAt        time.Time       `json:"updatedAt"`
	Version          int64           `json:"-"` // Optimistic concurrency token, storage-internal
}

// RateHistory is an immutable snapshot of the CurrencyRate values that were
// superseded by an update. Rows are appended once and never touched again.
type RateHistory struct {
	ID               int64           `json:"id"`
	CurrencyCode     string          `json:"currencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
