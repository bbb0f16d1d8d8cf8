package services

import (
	"context"

	"github.com/fxtracker/currency_rates_app/internal/core/domain"
	"github.com/fxtracker/currency_rates_app/internal/dto"
)

// RateReaderSvc defines read operations for current rates and history
type RateReaderSvc interface {
	// ListRates retrieves all current rates.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// GetRateHistory retrieves the bounded history for a currency code,
	// most recent first. Unknown codes yield an empty slice.
	GetRateHistory(ctx context.Context, currencyCode string) ([]domain.RateHistory, error)
}

// RateWriterSvc defines write operations for current rates
type RateWriterSvc interface {
	// UpdateRate applies one rate update: archive the prior value into history
	// and replace the current value, or create the currency when unseen.
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (*domain.CurrencyRate, error)

	// SeedDefaultRates ensures the baseline currency catalog exists without
	// overwriting rows that are already present.
	SeedDefaultRates(ctx context.Context) error
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
