package repositories

import (
	"context"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// ShippingZoneReader defines read operations for shipping zones.
// Implementations return apperrors.ErrShippingDataUnavailable when the backing
// tables are missing or unreachable.
type ShippingZoneReader interface {
	ListShippingZones(ctx context.Context, storeID string) ([]domain.ShippingZone, error)
	FindShippingZoneByID(ctx context.Context, storeID, zoneID string) (*domain.ShippingZone, error)
}

// ShippingZoneWriter defines write operations for shipping zones
type ShippingZoneWriter interface {
	SaveShippingZone(ctx context.Context, zone domain.ShippingZone) error
	UpdateShippingZone(ctx context.Context, zone domain.ShippingZone) error
	// DeleteShippingZone removes the zone and every method scoped to it.
	DeleteShippingZone(ctx context.Context, storeID, zoneID string) error
}

// ShippingMethodReader defines read operations for shipping methods
type ShippingMethodReader interface {
	// ListShippingMethods returns the store's methods ordered by sort order.
	ListShippingMethods(ctx context.Context, storeID string, activeOnly bool) ([]domain.ShippingMethod, error)
	FindShippingMethodByID(ctx context.Context, storeID, methodID string) (*domain.ShippingMethod, error)
}

// ShippingMethodWriter defines write operations for shipping methods
type ShippingMethodWriter interface {
	SaveShippingMethod(ctx context.Context, method domain.ShippingMethod) error
	UpdateShippingMethod(ctx context.Context, method domain.ShippingMethod) error
	DeleteShippingMethod(ctx context.Context, storeID, methodID string) error
}

// ShippingRepositoryFacade combines all shipping-related repository interfaces
type ShippingRepositoryFacade interface {
	ShippingZoneReader
	ShippingZoneWriter
	ShippingMethodReader
	ShippingMethodWriter
}
