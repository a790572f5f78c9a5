package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns the rate from -> to. Unknown pairs yield apperrors.ErrRateNotFound.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates returns a snapshot of every known rate.
	ListExchangeRates(ctx context.Context) []domain.ExchangeRate
}

// ExchangeRateRefresherSvc defines operations that pull rates from outside the process
type ExchangeRateRefresherSvc interface {
	// RefreshRates queries the FX provider and overwrites the known rates.
	RefreshRates(ctx context.Context) error

	// LoadPersistedRates seeds the table from the last persisted snapshot.
	LoadPersistedRates(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}

// CurrencyConverterSvc converts single amounts
type CurrencyConverterSvc interface {
	ConvertCurrency(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionResult, error)
}

// StoreRepricingSvc re-prices persisted store amounts when the display currency changes
type StoreRepricingSvc interface {
	// UpdateStoreAmounts converts every product price and order total of the store.
	UpdateStoreAmounts(ctx context.Context, storeID, oldCurrency, newCurrency string, mode domain.BulkUpdateMode) (*domain.BulkUpdateSummary, error)

	// ChangeStoreCurrency re-prices the store from its current currency and persists the new one.
	ChangeStoreCurrency(ctx context.Context, storeID, newCurrency string, mode domain.BulkUpdateMode, userID string) (*domain.BulkUpdateSummary, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyConverterSvc
	StoreRepricingSvc
}
