package handlers_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) []domain.ExchangeRate {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ExchangeRate)
}

func (m *MockExchangeRateService) RefreshRates(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExchangeRateService) LoadPersistedRates(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ConvertCurrency(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionResult, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

func (m *MockCurrencyService) UpdateStoreAmounts(ctx context.Context, storeID, oldCurrency, newCurrency string, mode domain.BulkUpdateMode) (*domain.BulkUpdateSummary, error) {
	args := m.Called(ctx, storeID, oldCurrency, newCurrency, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkUpdateSummary), args.Error(1)
}

func (m *MockCurrencyService) ChangeStoreCurrency(ctx context.Context, storeID, newCurrency string, mode domain.BulkUpdateMode, userID string) (*domain.BulkUpdateSummary, error) {
	args := m.Called(ctx, storeID, newCurrency, mode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkUpdateSummary), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock StoreService ---
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) AuthorizeStoreOwner(ctx context.Context, userID, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreService) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

var _ portssvc.StoreSvcFacade = (*MockStoreService)(nil)

// --- Mock ShippingService ---
type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) CalculateShipping(ctx context.Context, storeID, country string, subtotal decimal.Decimal) ([]domain.ShippingCalculation, error) {
	args := m.Called(ctx, storeID, country, subtotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingCalculation), args.Error(1)
}

func (m *MockShippingService) CreateZone(ctx context.Context, storeID string, req dto.CreateShippingZoneRequest, userID string) (*domain.ShippingZone, error) {
	args := m.Called(ctx, storeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingZone), args.Error(1)
}

func (m *MockShippingService) ListZones(ctx context.Context, storeID, userID string) ([]domain.ShippingZone, error) {
	args := m.Called(ctx, storeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingZone), args.Error(1)
}

func (m *MockShippingService) UpdateZone(ctx context.Context, storeID, zoneID string, req dto.UpdateShippingZoneRequest, userID string) (*domain.ShippingZone, error) {
	args := m.Called(ctx, storeID, zoneID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingZone), args.Error(1)
}

func (m *MockShippingService) DeleteZone(ctx context.Context, storeID, zoneID, userID string) error {
	args := m.Called(ctx, storeID, zoneID, userID)
	return args.Error(0)
}

func (m *MockShippingService) CreateMethod(ctx context.Context, storeID string, req dto.CreateShippingMethodRequest, userID string) (*domain.ShippingMethod, error) {
	args := m.Called(ctx, storeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingService) ListMethods(ctx context.Context, storeID, userID string) ([]domain.ShippingMethod, error) {
	args := m.Called(ctx, storeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingService) UpdateMethod(ctx context.Context, storeID, methodID string, req dto.UpdateShippingMethodRequest, userID string) (*domain.ShippingMethod, error) {
	args := m.Called(ctx, storeID, methodID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingService) DeleteMethod(ctx context.Context, storeID, methodID, userID string) error {
	args := m.Called(ctx, storeID, methodID, userID)
	return args.Error(0)
}

var _ portssvc.ShippingSvcFacade = (*MockShippingService)(nil)
