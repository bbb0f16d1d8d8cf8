package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxtracker/currency_rates_app/internal/apperrors"
	"github.com/fxtracker/currency_rates_app/internal/core/domain"
	portsrepo "github.com/fxtracker/currency_rates_app/internal/core/ports/repositories"
	"github.com/fxtracker/currency_rates_app/internal/dto"
	"github.com/shopspring/decimal"
)

// HistoryLimit bounds every history query; the API never returns more entries.
const HistoryLimit = 10

// maxUpdateAttempts bounds the optimistic-conflict retry loop in UpdateRate.
const maxUpdateAttempts = 3

var hundred = decimal.NewFromInt(100)

// defaultCatalog is the baseline set of currencies seeded at startup.
var defaultCatalog = []struct {
	code string
	name string
	rate int64
}{
	{"usd", "US Dollar", 530},
	{"eur", "Euro", 580},
	{"sar", "Saudi Riyal", 141},
	{"aed", "UAE Dirham", 144},
}

// RateService provides business logic for current rates and their history.
type RateService struct {
	rateRepo portsrepo.RateRepositoryFacade
	now      func() time.Time
}

// RateServiceOption customizes a RateService.
type RateServiceOption func(*RateService)

// WithClock overrides the time source used to stamp updates. The same instant
// is written to the replaced rate and its history snapshot, so tests can pin it.
func WithClock(now func() time.Time) RateServiceOption {
	return func(s *RateService) {
		s.now = now
	}
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, opts ...RateServiceOption) *RateService {
	s := &RateService{
		rateRepo: rateRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRates retrieves all current rates.
func (s *RateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.FindAllRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates in service: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

// GetRateHistory retrieves up to HistoryLimit archived snapshots for a code,
// most recent first. An unknown code yields an empty slice, not an error.
func (s *RateService) GetRateHistory(ctx context.Context, currencyCode string) ([]domain.RateHistory, error) {
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}

	entries, err := s.rateRepo.FindRateHistory(ctx, code, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate history in service: %w", err)
	}
	if entries == nil {
		return []domain.RateHistory{}, nil
	}
	return entries, nil
}

// UpdateRate applies one rate update as a single logical transaction: compute
// the percentage change versus the stored rate, archive the superseded values
// into history, and replace the current row. An unseen code is created with
// change 0 and no history entry.
//
// Concurrent updates to the same code are serialized by the version check in
// ReplaceRate; on conflict the whole read-compute-write sequence is retried
// from a fresh snapshot, bounded by maxUpdateAttempts.
func (s *RateService) UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (*domain.CurrencyRate, error) {
	code, err := normalizeCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if req.Rate == nil || !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be a positive number", apperrors.ErrValidation)
	}
	newRate := *req.Rate

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		current, err := s.rateRepo.FindRateByCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				created, err := s.createRate(ctx, code, req.CurrencyName, newRate)
				if errors.Is(err, apperrors.ErrDuplicate) {
					// Lost the insert race; re-read and take the update path.
					continue
				}
				return created, err
			}
			return nil, fmt.Errorf("failed to read current rate in service: %w", err)
		}

		updated := *current
		updated.Rate = newRate
		updated.ChangePercentage = changePercentage(current.Rate, newRate)
		updated.UpdatedAt = s.now()
		updated.Version = current.Version + 1

		history := domain.RateHistory{
			CurrencyCode:     current.CurrencyCode,
			Rate:             current.Rate,
			ChangePercentage: current.ChangePercentage,
			UpdatedAt:        current.UpdatedAt,
		}

		err = s.rateRepo.ReplaceRate(ctx, updated, history, current.Version)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return nil, fmt.Errorf("failed to replace rate in service: %w", err)
		}
		return &updated, nil
	}

	return nil, fmt.Errorf("update for %q gave up after %d attempts: %w", code, maxUpdateAttempts, apperrors.ErrConflict)
}

// SeedDefaultRates ensures the baseline currency catalog exists. Rows already
// present, user-modified or not, are never overwritten; running it twice is a
// no-op.
func (s *RateService) SeedDefaultRates(ctx context.Context) error {
	now := s.now()
	catalog := make([]domain.CurrencyRate, len(defaultCatalog))
	for i, c := range defaultCatalog {
		catalog[i] = domain.CurrencyRate{
			CurrencyCode:     c.code,
			CurrencyName:     c.name,
			Rate:             decimal.NewFromInt(c.rate),
			ChangePercentage: decimal.Zero,
			UpdatedAt:        now,
			Version:          1,
		}
	}

	if err := s.rateRepo.SeedRates(ctx, catalog); err != nil {
		return fmt.Errorf("failed to seed default rates in service: %w", err)
	}
	return nil
}

func (s *RateService) createRate(ctx context.Context, code, name string, newRate decimal.Decimal) (*domain.CurrencyRate, error) {
	rate := domain.CurrencyRate{
		CurrencyCode:     code,
		CurrencyName:     name,
		Rate:             newRate,
		ChangePercentage: decimal.Zero,
		UpdatedAt:        s.now(),
		Version:          1,
	}

	created, err := s.rateRepo.CreateRate(ctx, rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create currency rate in service: %w", err)
	}
	return created, nil
}

// changePercentage computes (newRate − oldRate) / oldRate × 100. A stored zero
// rate (possible in data that predates validation) yields 0 instead of dividing.
func changePercentage(oldRate, newRate decimal.Decimal) decimal.Decimal {
	if oldRate.IsZero() {
		return decimal.Zero
	}
	return newRate.Sub(oldRate).Div(oldRate).Mul(hundred)
}

// normalizeCurrencyCode lower-cases and trims a currency code so that mixed-case
// input for an existing currency can never create a duplicate row. The seed
// catalog is lower-case, so lower-case is the stored form.
func normalizeCurrencyCode(code string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return "", fmt.Errorf("%w: currency_code must not be empty", apperrors.ErrValidation)
	}
	return normalized, nil
}
