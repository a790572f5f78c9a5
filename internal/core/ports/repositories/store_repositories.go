package repositories

import (
	"context"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// StoreReader defines read operations for stores
type StoreReader interface {
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)
}

// StoreWriter defines write operations for stores
type StoreWriter interface {
	UpdateStoreCurrency(ctx context.Context, storeID, currency, userID string) error
}

// StoreRepositoryFacade combines all store-related repository interfaces
type StoreRepositoryFacade interface {
	StoreReader
	StoreWriter
}

// MonetaryRecordRepository reads and re-prices product prices and order totals.
type MonetaryRecordRepository interface {
	// ListStoreAmounts returns every product price and order total of the store.
	ListStoreAmounts(ctx context.Context, storeID string) ([]domain.MonetaryRecord, error)

	// UpdateAmount writes a single record's amount.
	UpdateAmount(ctx context.Context, storeID string, record domain.MonetaryRecord) error

	// UpdateAmountsAtomically writes every record in one transaction; on error none are written.
	UpdateAmountsAtomically(ctx context.Context, storeID string, records []domain.MonetaryRecord) error
}
