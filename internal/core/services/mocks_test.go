package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/core/ports/providers"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context, base string, symbols []string) (*providers.RateQuote, error) {
	args := m.Called(ctx, base, symbols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.RateQuote), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock StoreRepository ---
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) UpdateStoreCurrency(ctx context.Context, storeID, currency, userID string) error {
	args := m.Called(ctx, storeID, currency, userID)
	return args.Error(0)
}

// --- Mock MonetaryRecordRepository ---
type MockMonetaryRecordRepository struct {
	mock.Mock
}

func (m *MockMonetaryRecordRepository) ListStoreAmounts(ctx context.Context, storeID string) ([]domain.MonetaryRecord, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonetaryRecord), args.Error(1)
}

func (m *MockMonetaryRecordRepository) UpdateAmount(ctx context.Context, storeID string, record domain.MonetaryRecord) error {
	args := m.Called(ctx, storeID, record)
	return args.Error(0)
}

func (m *MockMonetaryRecordRepository) UpdateAmountsAtomically(ctx context.Context, storeID string, records []domain.MonetaryRecord) error {
	args := m.Called(ctx, storeID, records)
	return args.Error(0)
}

// --- Mock ShippingRepository ---
type MockShippingRepository struct {
	mock.Mock
}

func (m *MockShippingRepository) ListShippingZones(ctx context.Context, storeID string) ([]domain.ShippingZone, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingZone), args.Error(1)
}

func (m *MockShippingRepository) FindShippingZoneByID(ctx context.Context, storeID, zoneID string) (*domain.ShippingZone, error) {
	args := m.Called(ctx, storeID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingZone), args.Error(1)
}

func (m *MockShippingRepository) SaveShippingZone(ctx context.Context, zone domain.ShippingZone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockShippingRepository) UpdateShippingZone(ctx context.Context, zone domain.ShippingZone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockShippingRepository) DeleteShippingZone(ctx context.Context, storeID, zoneID string) error {
	args := m.Called(ctx, storeID, zoneID)
	return args.Error(0)
}

func (m *MockShippingRepository) ListShippingMethods(ctx context.Context, storeID string, activeOnly bool) ([]domain.ShippingMethod, error) {
	args := m.Called(ctx, storeID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingRepository) FindShippingMethodByID(ctx context.Context, storeID, methodID string) (*domain.ShippingMethod, error) {
	args := m.Called(ctx, storeID, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingRepository) SaveShippingMethod(ctx context.Context, method domain.ShippingMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockShippingRepository) UpdateShippingMethod(ctx context.Context, method domain.ShippingMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockShippingRepository) DeleteShippingMethod(ctx context.Context, storeID, methodID string) error {
	args := m.Called(ctx, storeID, methodID)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}
