package pgsql

import (
	"context"
	"errors"

	"github.com/fxtracker/currency_rates_app/internal/apperrors"
	"github.com/fxtracker/currency_rates_app/internal/core/domain"
	"github.com/fxtracker/currency_rates_app/internal/models"
	"github.com/fxtracker/currency_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the ports.RateRepositoryFacade interface using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const currentRateColumns = `id, currency_code, currency_name, rate, change_percentage, updated_at, version`

// FindAllRates retrieves every current rate in natural storage order.
func (r *PgxRateRepository) FindAllRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+currentRateColumns+` FROM current_rates`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list current rates", err)
	}
	defer rows.Close()

	var rates []domain.CurrencyRate
	for rows.Next() {
		modelRate, err := scanCurrencyRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan current rate", err)
		}
		rates = append(rates, mapping.ToDomainCurrencyRate(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating current rates", err)
	}

	return rates, nil
}

// FindRateByCode retrieves the current rate for a normalized currency code.
func (r *PgxRateRepository) FindRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+currentRateColumns+` FROM current_rates WHERE currency_code = $1`,
		currencyCode,
	)

	modelRate, err := scanCurrencyRate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency rate for " + currencyCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find current rate", err)
	}

	domainRate := mapping.ToDomainCurrencyRate(modelRate)
	return &domainRate, nil
}

// FindRateHistory retrieves up to limit archived snapshots for a code, most
// recent first. The id tie-break keeps same-second entries in insertion order.
func (r *PgxRateRepository) FindRateHistory(ctx context.Context, currencyCode string, limit int) ([]domain.RateHistory, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, currency_code, rate, change_percentage, updated_at
		FROM rate_history
		WHERE currency_code = $1
		ORDER BY updated_at DESC, id DESC
		LIMIT $2`,
		currencyCode, limit,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rate history", err)
	}
	defer rows.Close()

	entries := []domain.RateHistory{}
	for rows.Next() {
		var m models.RateHistory
		if err := rows.Scan(&m.ID, &m.CurrencyCode, &m.Rate, &m.ChangePercentage, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate history entry", err)
		}
		entries = append(entries, mapping.ToDomainRateHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rate history", err)
	}

	return entries, nil
}

// CreateRate inserts a brand-new current rate. ON CONFLICT DO NOTHING makes the
// insert race-safe: when another writer created the code first, no row comes
// back and the caller gets ErrDuplicate instead of a partial overwrite.
func (r *PgxRateRepository) CreateRate(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, error) {
	modelRate := mapping.ToModelCurrencyRate(rate)

	row := r.Pool.QueryRow(ctx, `
		INSERT INTO current_rates (currency_code, currency_name, rate, change_percentage, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_code) DO NOTHING
		RETURNING `+currentRateColumns,
		modelRate.CurrencyCode, modelRate.CurrencyName, modelRate.Rate,
		modelRate.ChangePercentage, modelRate.UpdatedAt, modelRate.Version,
	)

	created, err := scanCurrencyRate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(409, "currency code "+rate.CurrencyCode+" already exists", apperrors.ErrDuplicate)
		}
		return nil, apperrors.NewAppError(500, "failed to create current rate", err)
	}

	domainRate := mapping.ToDomainCurrencyRate(created)
	return &domainRate, nil
}

// ReplaceRate overwrites the current rate and appends the pre-update history
// snapshot in one transaction. The version predicate serializes concurrent
// updates to the same code: when the stored row moved on, zero rows match,
// nothing is written and ErrConflict is returned.
func (r *PgxRateRepository) ReplaceRate(ctx context.Context, updated domain.CurrencyRate, history domain.RateHistory, expectedVersion int64) error {
	modelRate := mapping.ToModelCurrencyRate(updated)
	modelHistory := mapping.ToModelRateHistory(history)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE current_rates
		SET rate = $1, change_percentage = $2, updated_at = $3, version = version + 1
		WHERE currency_code = $4 AND version = $5`,
		modelRate.Rate, modelRate.ChangePercentage, modelRate.UpdatedAt,
		modelRate.CurrencyCode, expectedVersion,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to replace current rate", err)
	}
	if tag.RowsAffected() == 0 {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(409, "current rate for "+updated.CurrencyCode+" was modified concurrently", apperrors.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rate_history (currency_code, rate, change_percentage, updated_at)
		VALUES ($1, $2, $3, $4)`,
		modelHistory.CurrencyCode, modelHistory.Rate, modelHistory.ChangePercentage, modelHistory.UpdatedAt,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to append rate history", err)
	}

	return r.Commit(ctx, tx)
}

// SeedRates inserts each catalog entry only if its code does not already exist.
// The whole catalog goes in one transaction so a partially seeded table is
// never visible.
func (r *PgxRateRepository) SeedRates(ctx context.Context, catalog []domain.CurrencyRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	for _, rate := range catalog {
		modelRate := mapping.ToModelCurrencyRate(rate)
		_, err := tx.Exec(ctx, `
			INSERT INTO current_rates (currency_code, currency_name, rate, change_percentage, updated_at, version)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (currency_code) DO NOTHING`,
			modelRate.CurrencyCode, modelRate.CurrencyName, modelRate.Rate,
			modelRate.ChangePercentage, modelRate.UpdatedAt, modelRate.Version,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to seed currency "+rate.CurrencyCode, err)
		}
	}

	return r.Commit(ctx, tx)
}

func scanCurrencyRate(row pgx.Row) (models.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(&m.ID, &m.CurrencyCode, &m.CurrencyName, &m.Rate,
		&m.ChangePercentage, &m.UpdatedAt, &m.Version)
	return m, err
}
