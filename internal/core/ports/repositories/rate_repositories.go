package repositories

import (
	"context"

	"github.com/fxtracker/currency_rates_app/internal/core/domain"
)

// RateReader defines read operations for current rates and their history
type RateReader interface {
	// FindAllRates retrieves every current rate. Order is unspecified.
	FindAllRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// FindRateByCode retrieves the current rate for a (normalized) currency code.
	// Returns apperrors.ErrNotFound when the code is unknown.
	FindRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// FindRateHistory retrieves up to limit history entries for a code, most
	// recent first. Unknown codes yield an empty slice, not an error.
	FindRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error)
}

// RateWriter defines write operations for current rates and their history
type RateWriter interface {
	// CreateRate inserts a brand-new current rate and returns the persisted row
	// (with its generated ID). Returns apperrors.ErrDuplicate when the code
	// already exists (e.g. a concurrent insert won the race).
	CreateRate(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, error)

	// ReplaceRate overwrites the current rate and appends the pre-update history
	// snapshot in one transaction. The write only applies when the stored row
	// still has expectedVersion; otherwise apperrors.ErrConflict is returned and
	// nothing is written.
	ReplaceRate(ctx context.Context, updated domain.CurrencyRate, history domain.RateHistory, expectedVersion int64) error

	// SeedRates inserts each catalog entry only if its code does not already
	// exist. Existing rows are never overwritten.
	SeedRates(ctx context.Context, catalog []domain.CurrencyRate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
