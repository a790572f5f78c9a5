package services

import (
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/core/ports/providers"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider providers.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Store service first since every merchant operation authorizes through it
	storeSvc := NewStoreService(repos.StoreRepo, cfg.RepositoryTimeout)
	container.Store = storeSvc

	container.ExchangeRate = NewExchangeRateService(
		domain.SeedRateTable(cfg.StaticUSDPerEUR, cfg.StaticGBPPerEUR),
		rateProvider,
		WithRateRepository(repos.ExchangeRateRepo),
		WithBaseCurrency(cfg.FXBaseCurrency, cfg.FXCurrencies),
		WithProviderTimeout(cfg.FXProviderTimeout),
		WithRateRepositoryTimeout(cfg.RepositoryTimeout),
	)

	container.Currency = NewCurrencyService(
		container.ExchangeRate,
		WithStoreRecords(repos.StoreRepo, repos.MonetaryRepo),
		WithCurrencyStoreAuthorizer(storeSvc),
		WithBulkUpdateLimits(cfg.RepositoryTimeout, cfg.RecordUpdateTimeout, cfg.BulkUpdateConcurrency),
	)

	container.Shipping = NewShippingService(
		repos.ShippingRepo,
		WithShippingStoreAuthorizer(storeSvc),
		WithShippingRepositoryTimeout(cfg.RepositoryTimeout),
	)

	return container
}
