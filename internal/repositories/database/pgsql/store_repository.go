package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	"github.com/simpshopy/simpshopy_backend/internal/models"
	"github.com/simpshopy/simpshopy_backend/internal/utils/mapping"
)

// PgxStoreRepository implements portsrepo.StoreRepositoryFacade using pgxpool.
type PgxStoreRepository struct {
	BaseRepository
}

func newPgxStoreRepository(pool *pgxpool.Pool) *PgxStoreRepository {
	return &PgxStoreRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StoreRepositoryFacade = (*PgxStoreRepository)(nil)

// FindStoreByID retrieves a store by its ID.
func (r *PgxStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query := `
		SELECT store_id, owner_id, name, currency, created_at, created_by, last_updated_at, last_updated_by
		FROM stores
		WHERE store_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query store", err)
	}

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Store])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("store " + storeID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan store", err)
	}

	store := mapping.ToDomainStore(m)
	return &store, nil
}

// UpdateStoreCurrency sets the store's display currency.
func (r *PgxStoreRepository) UpdateStoreCurrency(ctx context.Context, storeID, currency, userID string) error {
	query := `
		UPDATE stores
		SET currency = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE store_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, domain.NormalizeCurrencyCode(currency), userID, storeID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update store currency", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("store " + storeID + " not found")
	}
	return nil
}
