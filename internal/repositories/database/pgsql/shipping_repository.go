package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	"github.com/simpshopy/simpshopy_backend/internal/models"
	"github.com/simpshopy/simpshopy_backend/internal/utils/mapping"
)

// PgxShippingRepository implements portsrepo.ShippingRepositoryFacade using pgxpool.
type PgxShippingRepository struct {
	BaseRepository
}

func newPgxShippingRepository(pool *pgxpool.Pool) *PgxShippingRepository {
	return &PgxShippingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ShippingRepositoryFacade = (*PgxShippingRepository)(nil)

const selectShippingZoneQuery = `
SELECT
	shipping_zone_id, store_id, name, description, countries, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM shipping_zones
`

const selectShippingMethodQuery = `
SELECT
	shipping_method_id, store_id, shipping_zone_id, name, price, free_shipping_threshold,
	is_active, sort_order, created_at, created_by, last_updated_at, last_updated_by
FROM shipping_methods
`

// readError maps read failures that mean "this store has no usable shipping data".
func readError(err error, msg string) error {
	if isSchemaMissing(err) || isUnreachable(err) {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrShippingDataUnavailable, msg, err)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

// writeError maps constraint violations onto validation and duplicate errors.
func writeError(err error, msg string) error {
	switch pgErrorCode(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, msg)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s: referenced store or zone does not exist", apperrors.ErrValidation, msg)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s: value out of range", apperrors.ErrValidation, msg)
	}
	if isSchemaMissing(err) || isUnreachable(err) {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrShippingDataUnavailable, msg, err)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

func (r *PgxShippingRepository) queryZones(ctx context.Context, filter string, args ...any) ([]domain.ShippingZone, error) {
	rows, err := r.Pool.Query(ctx, selectShippingZoneQuery+filter, args...)
	if err != nil {
		return nil, readError(err, "failed to query shipping zones")
	}
	defer rows.Close()

	modelZones, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShippingZone])
	if err != nil {
		return nil, readError(err, "failed to collect shipping zone rows")
	}

	zones := make([]domain.ShippingZone, len(modelZones))
	for i, m := range modelZones {
		zones[i] = mapping.ToDomainShippingZone(m)
	}
	return zones, nil
}

func (r *PgxShippingRepository) queryMethods(ctx context.Context, filter string, args ...any) ([]domain.ShippingMethod, error) {
	rows, err := r.Pool.Query(ctx, selectShippingMethodQuery+filter, args...)
	if err != nil {
		return nil, readError(err, "failed to query shipping methods")
	}
	defer rows.Close()

	modelMethods, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShippingMethod])
	if err != nil {
		return nil, readError(err, "failed to collect shipping method rows")
	}

	methods := make([]domain.ShippingMethod, len(modelMethods))
	for i, m := range modelMethods {
		methods[i] = mapping.ToDomainShippingMethod(m)
	}
	return methods, nil
}

// ListShippingZones returns every zone of the store ordered by name.
func (r *PgxShippingRepository) ListShippingZones(ctx context.Context, storeID string) ([]domain.ShippingZone, error) {
	return r.queryZones(ctx, "WHERE store_id = $1 ORDER BY name;", storeID)
}

// FindShippingZoneByID retrieves a zone of the store.
func (r *PgxShippingRepository) FindShippingZoneByID(ctx context.Context, storeID, zoneID string) (*domain.ShippingZone, error) {
	zones, err := r.queryZones(ctx, "WHERE store_id = $1 AND shipping_zone_id = $2;", storeID, zoneID)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, apperrors.NewNotFoundError("shipping zone " + zoneID + " not found")
	}
	return &zones[0], nil
}

// SaveShippingZone inserts a new zone.
func (r *PgxShippingRepository) SaveShippingZone(ctx context.Context, zone domain.ShippingZone) error {
	m := mapping.ToModelShippingZone(zone)
	query := `
		INSERT INTO shipping_zones (
			shipping_zone_id, store_id, name, description, countries, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShippingZoneID, m.StoreID, m.Name, m.Description, m.Countries, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "failed to save shipping zone")
	}
	return nil
}

// UpdateShippingZone overwrites the mutable fields of a zone.
func (r *PgxShippingRepository) UpdateShippingZone(ctx context.Context, zone domain.ShippingZone) error {
	m := mapping.ToModelShippingZone(zone)
	query := `
		UPDATE shipping_zones
		SET name = $1, description = $2, countries = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE store_id = $7 AND shipping_zone_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Description, m.Countries, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.StoreID, m.ShippingZoneID,
	)
	if err != nil {
		return writeError(err, "failed to update shipping zone")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shipping zone " + zone.ShippingZoneID + " not found")
	}
	return nil
}

// DeleteShippingZone deletes a zone; its methods go with it through ON DELETE CASCADE.
func (r *PgxShippingRepository) DeleteShippingZone(ctx context.Context, storeID, zoneID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shipping_zones WHERE store_id = $1 AND shipping_zone_id = $2;`, storeID, zoneID)
	if err != nil {
		return writeError(err, "failed to delete shipping zone")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shipping zone " + zoneID + " not found")
	}
	return nil
}

// ListShippingMethods returns the store's methods ordered by sort order then name.
func (r *PgxShippingRepository) ListShippingMethods(ctx context.Context, storeID string, activeOnly bool) ([]domain.ShippingMethod, error) {
	if activeOnly {
		return r.queryMethods(ctx, "WHERE store_id = $1 AND is_active ORDER BY sort_order, name;", storeID)
	}
	return r.queryMethods(ctx, "WHERE store_id = $1 ORDER BY sort_order, name;", storeID)
}

// FindShippingMethodByID retrieves a method of the store.
func (r *PgxShippingRepository) FindShippingMethodByID(ctx context.Context, storeID, methodID string) (*domain.ShippingMethod, error) {
	methods, err := r.queryMethods(ctx, "WHERE store_id = $1 AND shipping_method_id = $2;", storeID, methodID)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, apperrors.NewNotFoundError("shipping method " + methodID + " not found")
	}
	return &methods[0], nil
}

// SaveShippingMethod inserts a new method.
func (r *PgxShippingRepository) SaveShippingMethod(ctx context.Context, method domain.ShippingMethod) error {
	m := mapping.ToModelShippingMethod(method)
	query := `
		INSERT INTO shipping_methods (
			shipping_method_id, store_id, shipping_zone_id, name, price, free_shipping_threshold,
			is_active, sort_order, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShippingMethodID, m.StoreID, m.ShippingZoneID, m.Name, m.Price, m.FreeShippingThreshold,
		m.IsActive, m.SortOrder, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "failed to save shipping method")
	}
	return nil
}

// UpdateShippingMethod overwrites the mutable fields of a method.
func (r *PgxShippingRepository) UpdateShippingMethod(ctx context.Context, method domain.ShippingMethod) error {
	m := mapping.ToModelShippingMethod(method)
	query := `
		UPDATE shipping_methods
		SET shipping_zone_id = $1, name = $2, price = $3, free_shipping_threshold = $4,
			is_active = $5, sort_order = $6, last_updated_at = $7, last_updated_by = $8
		WHERE store_id = $9 AND shipping_method_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ShippingZoneID, m.Name, m.Price, m.FreeShippingThreshold,
		m.IsActive, m.SortOrder, m.LastUpdatedAt, m.LastUpdatedBy,
		m.StoreID, m.ShippingMethodID,
	)
	if err != nil {
		return writeError(err, "failed to update shipping method")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shipping method " + method.ShippingMethodID + " not found")
	}
	return nil
}

// DeleteShippingMethod deletes a method.
func (r *PgxShippingRepository) DeleteShippingMethod(ctx context.Context, storeID, methodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shipping_methods WHERE store_id = $1 AND shipping_method_id = $2;`, storeID, methodID)
	if err != nil {
		return writeError(err, "failed to delete shipping method")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shipping method " + methodID + " not found")
	}
	return nil
}
