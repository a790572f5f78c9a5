package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
)

// ShippingCalculatorSvc prices shipping for a checkout
type ShippingCalculatorSvc interface {
	// CalculateShipping returns every eligible method priced for subtotal, by sort order.
	// A store without shipping data yields an empty list and no error.
	CalculateShipping(ctx context.Context, storeID, country string, subtotal decimal.Decimal) ([]domain.ShippingCalculation, error)
}

// ShippingZoneSvc manages a store's shipping zones
type ShippingZoneSvc interface {
	CreateZone(ctx context.Context, storeID string, req dto.CreateShippingZoneRequest, userID string) (*domain.ShippingZone, error)
	ListZones(ctx context.Context, storeID, userID string) ([]domain.ShippingZone, error)
	UpdateZone(ctx context.Context, storeID, zoneID string, req dto.UpdateShippingZoneRequest, userID string) (*domain.ShippingZone, error)
	DeleteZone(ctx context.Context, storeID, zoneID, userID string) error
}

// ShippingMethodSvc manages a store's shipping methods
type ShippingMethodSvc interface {
	CreateMethod(ctx context.Context, storeID string, req dto.CreateShippingMethodRequest, userID string) (*domain.ShippingMethod, error)
	ListMethods(ctx context.Context, storeID, userID string) ([]domain.ShippingMethod, error)
	UpdateMethod(ctx context.Context, storeID, methodID string, req dto.UpdateShippingMethodRequest, userID string) (*domain.ShippingMethod, error)
	DeleteMethod(ctx context.Context, storeID, methodID, userID string) error
}

// ShippingSvcFacade combines all shipping-related service interfaces
type ShippingSvcFacade interface {
	ShippingCalculatorSvc
	ShippingZoneSvc
	ShippingMethodSvc
}
