package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StoreRepo:        newPgxStoreRepository(dbPool),
		MonetaryRepo:     newPgxMonetaryRecordRepository(dbPool),
		ShippingRepo:     newPgxShippingRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
}
