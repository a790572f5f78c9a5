package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	"github.com/simpshopy/simpshopy_backend/internal/models"
	"github.com/simpshopy/simpshopy_backend/internal/utils/mapping"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const upsertExchangeRateQuery = `
	INSERT INTO exchange_rates (from_currency_code, to_currency_code, rate, source, last_updated)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (from_currency_code, to_currency_code)
	DO UPDATE SET rate = EXCLUDED.rate, source = EXCLUDED.source, last_updated = EXCLUDED.last_updated;
`

// SaveExchangeRates upserts every rate in a single transaction. Pairs not in rates are left alone.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		m.FromCurrencyCode = domain.NormalizeCurrencyCode(m.FromCurrencyCode)
		m.ToCurrencyCode = domain.NormalizeCurrencyCode(m.ToCurrencyCode)
		if m.FromCurrencyCode == m.ToCurrencyCode {
			return apperrors.NewValidationError("from and to currencies cannot be the same")
		}
		batch.Queue(upsertExchangeRateQuery, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.Source, m.LastUpdated)
	}

	results := tx.SendBatch(ctx, batch)
	for range rates {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert exchange rate", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert exchange rates", err)
	}

	return r.Commit(ctx, tx)
}

// ListExchangeRates returns every persisted pair. A missing table reports apperrors.ErrNotFound.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT from_currency_code, to_currency_code, rate, source, last_updated
		FROM exchange_rates
		ORDER BY from_currency_code, to_currency_code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		if isSchemaMissing(err) {
			return nil, fmt.Errorf("%w: exchange_rates table missing", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		if isSchemaMissing(err) {
			return nil, fmt.Errorf("%w: exchange_rates table missing", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect exchange rate rows", err)
	}

	rates := make([]domain.ExchangeRate, len(modelRates))
	for i, m := range modelRates {
		rates[i] = mapping.ToDomainExchangeRate(m)
	}
	return rates, nil
}
