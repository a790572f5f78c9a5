package repositories

import (
	"context"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for persisted exchange rates
type ExchangeRateReader interface {
	// ListExchangeRates returns the last persisted rate of every pair.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for persisted exchange rates
type ExchangeRateWriter interface {
	// SaveExchangeRates upserts rates by (from, to). Existing pairs are overwritten, never deleted.
	SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
