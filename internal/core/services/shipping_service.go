package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
)

// ShippingService prices shipping at checkout and manages a store's zones and methods.
type ShippingService struct {
	BaseService
	shippingRepo      portsrepo.ShippingRepositoryFacade
	repositoryTimeout time.Duration
}

// ShippingServiceOption configures a ShippingService.
type ShippingServiceOption func(*ShippingService)

// WithShippingStoreAuthorizer sets the ownership check used by the management operations.
func WithShippingStoreAuthorizer(authorizer portssvc.StoreAuthorizerSvc) ShippingServiceOption {
	return func(s *ShippingService) {
		s.StoreAuthorizer = authorizer
	}
}

// WithShippingRepositoryTimeout bounds each repository call.
func WithShippingRepositoryTimeout(d time.Duration) ShippingServiceOption {
	return func(s *ShippingService) {
		s.repositoryTimeout = d
	}
}

// WithShippingClock replaces time.Now for audit fields.
func WithShippingClock(now func() time.Time) ShippingServiceOption {
	return func(s *ShippingService) {
		s.Now = now
	}
}

// NewShippingService creates a new ShippingService.
func NewShippingService(repo portsrepo.ShippingRepositoryFacade, opts ...ShippingServiceOption) *ShippingService {
	s := &ShippingService{shippingRepo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ShippingSvcFacade = (*ShippingService)(nil)

// CalculateShipping returns every method the store ships to country with, priced
// for subtotal and ordered by sort order then name.
//
// A store whose shipping data cannot be read gets an empty list so checkout can
// continue; a method pointing at a zone the store does not have is an error.
func (s *ShippingService) CalculateShipping(ctx context.Context, storeID, country string, subtotal decimal.Decimal) ([]domain.ShippingCalculation, error) {
	country = strings.TrimSpace(country)
	if storeID == "" {
		return nil, fmt.Errorf("%w: store id is required", apperrors.ErrValidation)
	}
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", apperrors.ErrValidation)
	}
	if subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: subtotal must not be negative", apperrors.ErrValidation)
	}

	readCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	methods, err := s.shippingRepo.ListShippingMethods(readCtx, storeID, true)
	if err != nil {
		return s.degrade(ctx, storeID, "methods", err)
	}
	zones, err := s.shippingRepo.ListShippingZones(readCtx, storeID)
	if err != nil {
		return s.degrade(ctx, storeID, "zones", err)
	}

	zonesByID := make(map[string]domain.ShippingZone, len(zones))
	for _, zone := range zones {
		zonesByID[zone.ShippingZoneID] = zone
	}

	calcs := make([]domain.ShippingCalculation, 0, len(methods))
	for _, method := range methods {
		if !method.IsActive {
			continue
		}
		if !method.IsGlobal() {
			zone, ok := zonesByID[*method.ShippingZoneID]
			if !ok {
				err := fmt.Errorf("%w: method %s references unknown zone %s",
					apperrors.ErrShippingMisconfigured, method.ShippingMethodID, *method.ShippingZoneID)
				s.LogError(ctx, err, "Shipping configuration is inconsistent", slog.String("store_id", storeID))
				return nil, err
			}
			if !zone.Covers(country) {
				continue
			}
		}
		calcs = append(calcs, method.Quote(subtotal))
	}

	sort.SliceStable(calcs, func(i, j int) bool {
		a, b := calcs[i].Method, calcs[j].Method
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})

	s.LogDebug(ctx, "Shipping calculated",
		slog.String("store_id", storeID),
		slog.String("country", country),
		slog.Int("options", len(calcs)))
	return calcs, nil
}

// degrade turns unreadable shipping data into an empty option list.
func (s *ShippingService) degrade(ctx context.Context, storeID, what string, err error) ([]domain.ShippingCalculation, error) {
	err = apperrors.FromContext(err)
	if errors.Is(err, apperrors.ErrShippingDataUnavailable) || errors.Is(err, apperrors.ErrTimeout) {
		s.LogWarn(ctx, "Shipping data unavailable, returning no options",
			slog.String("store_id", storeID),
			slog.String("read", what),
			slog.String("error", err.Error()))
		return []domain.ShippingCalculation{}, nil
	}
	s.LogError(ctx, err, "Failed to read shipping data", slog.String("store_id", storeID), slog.String("read", what))
	return nil, fmt.Errorf("failed to read shipping %s: %w", what, err)
}

// CreateZone adds a zone to the store.
func (s *ShippingService) CreateZone(ctx context.Context, storeID string, req dto.CreateShippingZoneRequest, userID string) (*domain.ShippingZone, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: zone name is required", apperrors.ErrValidation)
	}
	countries := cleanCountries(req.Countries)
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: a zone needs at least one country", apperrors.ErrValidation)
	}

	zone := domain.ShippingZone{
		ShippingZoneID: uuid.NewString(),
		StoreID:        storeID,
		Name:           name,
		Description:    req.Description,
		Countries:      countries,
		IsActive:       boolOrDefault(req.IsActive, true),
		AuditFields:    domain.NewAuditFields(userID, s.CurrentTime()),
	}

	writeCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	if err := s.shippingRepo.SaveShippingZone(writeCtx, zone); err != nil {
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Failed to save shipping zone", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to create shipping zone: %w", err)
	}

	s.LogInfo(ctx, "Shipping zone created", slog.String("store_id", storeID), slog.String("zone_id", zone.ShippingZoneID))
	return &zone, nil
}

// ListZones returns every zone of the store, active or not.
func (s *ShippingService) ListZones(ctx context.Context, storeID, userID string) ([]domain.ShippingZone, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	readCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	zones, err := s.shippingRepo.ListShippingZones(readCtx, storeID)
	if err != nil {
		return nil, apperrors.FromContext(err)
	}
	return zones, nil
}

// UpdateZone applies the fields present in req.
func (s *ShippingService) UpdateZone(ctx context.Context, storeID, zoneID string, req dto.UpdateShippingZoneRequest, userID string) (*domain.ShippingZone, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	ctx2, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	zone, err := s.shippingRepo.FindShippingZoneByID(ctx2, storeID, zoneID)
	if err != nil {
		return nil, apperrors.FromContext(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: zone name must not be empty", apperrors.ErrValidation)
		}
		zone.Name = name
	}
	if req.Description != nil {
		zone.Description = req.Description
	}
	if req.Countries != nil {
		countries := cleanCountries(req.Countries)
		if len(countries) == 0 {
			return nil, fmt.Errorf("%w: a zone needs at least one country", apperrors.ErrValidation)
		}
		zone.Countries = countries
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	zone.Touch(userID, s.CurrentTime())

	if err := s.shippingRepo.UpdateShippingZone(ctx2, *zone); err != nil {
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Failed to update shipping zone", slog.String("zone_id", zoneID))
		return nil, fmt.Errorf("failed to update shipping zone: %w", err)
	}
	return zone, nil
}

// DeleteZone removes the zone and the methods scoped to it.
func (s *ShippingService) DeleteZone(ctx context.Context, storeID, zoneID, userID string) error {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return err
	}

	writeCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	if err := s.shippingRepo.DeleteShippingZone(writeCtx, storeID, zoneID); err != nil {
		return apperrors.FromContext(err)
	}

	s.LogInfo(ctx, "Shipping zone deleted", slog.String("store_id", storeID), slog.String("zone_id", zoneID))
	return nil
}

// CreateMethod adds a method to the store. A nil zone makes it global.
func (s *ShippingService) CreateMethod(ctx context.Context, storeID string, req dto.CreateShippingMethodRequest, userID string) (*domain.ShippingMethod, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: method name is required", apperrors.ErrValidation)
	}
	if err := validatePricing(req.Price, req.FreeShippingThreshold); err != nil {
		return nil, err
	}

	writeCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	zoneID, err := s.resolveZoneRef(writeCtx, storeID, req.ShippingZoneID)
	if err != nil {
		return nil, err
	}

	method := domain.ShippingMethod{
		ShippingMethodID:      uuid.NewString(),
		StoreID:               storeID,
		ShippingZoneID:        zoneID,
		Name:                  name,
		Price:                 req.Price,
		FreeShippingThreshold: req.FreeShippingThreshold,
		IsActive:              boolOrDefault(req.IsActive, true),
		SortOrder:             req.SortOrder,
		AuditFields:           domain.NewAuditFields(userID, s.CurrentTime()),
	}

	if err := s.shippingRepo.SaveShippingMethod(writeCtx, method); err != nil {
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Failed to save shipping method", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to create shipping method: %w", err)
	}

	s.LogInfo(ctx, "Shipping method created", slog.String("store_id", storeID), slog.String("method_id", method.ShippingMethodID))
	return &method, nil
}

// ListMethods returns every method of the store, active or not.
func (s *ShippingService) ListMethods(ctx context.Context, storeID, userID string) ([]domain.ShippingMethod, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	readCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	methods, err := s.shippingRepo.ListShippingMethods(readCtx, storeID, false)
	if err != nil {
		return nil, apperrors.FromContext(err)
	}
	return methods, nil
}

// UpdateMethod applies the fields present in req.
func (s *ShippingService) UpdateMethod(ctx context.Context, storeID, methodID string, req dto.UpdateShippingMethodRequest, userID string) (*domain.ShippingMethod, error) {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return nil, err
	}

	ctx2, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	method, err := s.shippingRepo.FindShippingMethodByID(ctx2, storeID, methodID)
	if err != nil {
		return nil, apperrors.FromContext(err)
	}

	switch {
	case req.MakeGlobal:
		method.ShippingZoneID = nil
	case req.ShippingZoneID != nil:
		zoneID, err := s.resolveZoneRef(ctx2, storeID, req.ShippingZoneID)
		if err != nil {
			return nil, err
		}
		method.ShippingZoneID = zoneID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: method name must not be empty", apperrors.ErrValidation)
		}
		method.Name = name
	}
	if req.Price != nil {
		method.Price = *req.Price
	}
	if req.ClearThreshold {
		method.FreeShippingThreshold = nil
	} else if req.FreeShippingThreshold != nil {
		method.FreeShippingThreshold = req.FreeShippingThreshold
	}
	if err := validatePricing(method.Price, method.FreeShippingThreshold); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		method.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		method.SortOrder = *req.SortOrder
	}
	method.Touch(userID, s.CurrentTime())

	if err := s.shippingRepo.UpdateShippingMethod(ctx2, *method); err != nil {
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Failed to update shipping method", slog.String("method_id", methodID))
		return nil, fmt.Errorf("failed to update shipping method: %w", err)
	}
	return method, nil
}

// DeleteMethod removes a method.
func (s *ShippingService) DeleteMethod(ctx context.Context, storeID, methodID, userID string) error {
	if _, err := s.AuthorizeStore(ctx, userID, storeID); err != nil {
		return err
	}

	writeCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	if err := s.shippingRepo.DeleteShippingMethod(writeCtx, storeID, methodID); err != nil {
		return apperrors.FromContext(err)
	}

	s.LogInfo(ctx, "Shipping method deleted", slog.String("store_id", storeID), slog.String("method_id", methodID))
	return nil
}

// resolveZoneRef checks that a referenced zone belongs to the store. Empty means global.
func (s *ShippingService) resolveZoneRef(ctx context.Context, storeID string, zoneID *string) (*string, error) {
	if zoneID == nil || strings.TrimSpace(*zoneID) == "" {
		return nil, nil
	}
	id := strings.TrimSpace(*zoneID)
	if _, err := s.shippingRepo.FindShippingZoneByID(ctx, storeID, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: shipping zone %s does not exist in store %s", apperrors.ErrValidation, id, storeID)
		}
		return nil, apperrors.FromContext(err)
	}
	return &id, nil
}

func validatePricing(price decimal.Decimal, threshold *decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if threshold != nil && threshold.IsNegative() {
		return fmt.Errorf("%w: free shipping threshold must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// cleanCountries trims labels and drops blanks and duplicates of the same country.
func cleanCountries(countries []string) []string {
	out := make([]string, 0, len(countries))
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		c = strings.TrimSpace(c)
		key := domain.CountryKey(c)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
