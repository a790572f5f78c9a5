package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/core/ports/providers"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
)

type rateStamp struct {
	updated time.Time
	source  string
}

// ExchangeRateService resolves directional rates from an in-memory table that
// starts from an injected seed and is overwritten by provider refreshes.
type ExchangeRateService struct {
	BaseService

	provider          providers.RateProvider
	rateRepo          portsrepo.ExchangeRateRepositoryFacade
	baseCurrency      string
	currencies        []string
	providerTimeout   time.Duration
	repositoryTimeout time.Duration

	mu     sync.RWMutex
	rates  domain.RateTable
	stamps map[string]rateStamp

	refreshGroup singleflight.Group
}

// ExchangeRateOption configures an ExchangeRateService.
type ExchangeRateOption func(*ExchangeRateService)

// WithRateRepository persists refreshed rates and enables LoadPersistedRates.
func WithRateRepository(repo portsrepo.ExchangeRateRepositoryFacade) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.rateRepo = repo
	}
}

// WithBaseCurrency sets the currency the provider is queried against and the
// codes requested from it.
func WithBaseCurrency(base string, currencies []string) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.baseCurrency = domain.NormalizeCurrencyCode(base)
		s.currencies = currencies
	}
}

// WithProviderTimeout bounds each provider call.
func WithProviderTimeout(d time.Duration) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.providerTimeout = d
	}
}

// WithRateRepositoryTimeout bounds each read or write of persisted rates.
func WithRateRepositoryTimeout(d time.Duration) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.repositoryTimeout = d
	}
}

// WithRateClock replaces time.Now for refresh and identity timestamps.
func WithRateClock(now func() time.Time) ExchangeRateOption {
	return func(s *ExchangeRateService) {
		s.Now = now
	}
}

// NewExchangeRateService creates a resolver seeded with a copy of seed.
func NewExchangeRateService(seed domain.RateTable, provider providers.RateProvider, opts ...ExchangeRateOption) *ExchangeRateService {
	s := &ExchangeRateService{
		provider:        provider,
		baseCurrency:    domain.CurrencyEUR,
		currencies:      []string{domain.CurrencyXOF, domain.CurrencyEUR, domain.CurrencyUSD, domain.CurrencyGBP},
		providerTimeout: 5 * time.Second,
		rates:           seed.Clone(),
		stamps:          make(map[string]rateStamp),
	}
	for _, opt := range opts {
		opt(s)
	}

	seededAt := s.CurrentTime()
	for from, inner := range s.rates {
		for to := range inner {
			s.stamps[pairKey(from, to)] = rateStamp{updated: seededAt, source: domain.RateSourceStatic}
		}
	}
	return s
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

func pairKey(from, to string) string {
	return from + "/" + to
}

// GetExchangeRate returns the tabulated rate from -> to. Identical codes resolve to 1.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = domain.NormalizeCurrencyCode(fromCode)
	toCode = domain.NormalizeCurrencyCode(toCode)
	if fromCode == "" || toCode == "" {
		return nil, fmt.Errorf("%w: currency codes are required", apperrors.ErrValidation)
	}

	if fromCode == toCode {
		return &domain.ExchangeRate{
			FromCurrencyCode: fromCode,
			ToCurrencyCode:   toCode,
			Rate:             decimal.NewFromInt(1),
			LastUpdated:      s.CurrentTime(),
			Source:           domain.RateSourceIdentity,
		}, nil
	}

	s.mu.RLock()
	rate, ok := s.rates.Lookup(fromCode, toCode)
	stamp := s.stamps[pairKey(fromCode, toCode)]
	s.mu.RUnlock()

	if !ok {
		s.LogDebug(ctx, "No exchange rate for pair", slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrRateNotFound, fromCode, toCode)
	}

	return &domain.ExchangeRate{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             rate,
		LastUpdated:      stamp.updated,
		Source:           stamp.source,
	}, nil
}

// ListExchangeRates returns every tabulated pair sorted by from then to.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) []domain.ExchangeRate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ExchangeRate, 0, len(s.stamps))
	for from, inner := range s.rates {
		for to, rate := range inner {
			stamp := s.stamps[pairKey(from, to)]
			out = append(out, domain.ExchangeRate{
				FromCurrencyCode: from,
				ToCurrencyCode:   to,
				Rate:             rate,
				LastUpdated:      stamp.updated,
				Source:           stamp.source,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FromCurrencyCode != out[j].FromCurrencyCode {
			return out[i].FromCurrencyCode < out[j].FromCurrencyCode
		}
		return out[i].ToCurrencyCode < out[j].ToCurrencyCode
	})
	return out
}

// RefreshRates pulls base rates from the provider and overwrites the derived cross rates.
// On any provider failure the table is left untouched. Concurrent calls share one provider request.
func (s *ExchangeRateService) RefreshRates(ctx context.Context) error {
	if s.provider == nil {
		return fmt.Errorf("%w: no provider configured", apperrors.ErrProviderUnavailable)
	}

	// One caller going away must not abort the refresh the others are waiting on.
	detached := context.WithoutCancel(ctx)
	_, err, shared := s.refreshGroup.Do("refresh:"+s.baseCurrency, func() (interface{}, error) {
		return nil, s.refresh(detached)
	})
	if shared {
		s.LogDebug(ctx, "Joined in-flight exchange rate refresh")
	}
	return err
}

func (s *ExchangeRateService) refresh(ctx context.Context) error {
	symbols := s.symbols()

	fetchCtx, cancel := withTimeout(ctx, s.providerTimeout)
	quote, err := s.provider.FetchRates(fetchCtx, s.baseCurrency, symbols)
	cancel()
	if err != nil {
		err = apperrors.FromContext(err)
		if !errors.Is(err, apperrors.ErrTimeout) && !errors.Is(err, apperrors.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %w", apperrors.ErrProviderUnavailable, err)
		}
		s.LogError(ctx, err, "Exchange rate refresh failed, keeping current rates",
			slog.String("base", s.baseCurrency))
		return err
	}

	baseRates := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		rate, ok := quote.Rates[symbol]
		if !ok || !rate.IsPositive() {
			err := fmt.Errorf("%w: provider returned no usable rate for %s", apperrors.ErrProviderUnavailable, symbol)
			s.LogError(ctx, err, "Exchange rate refresh rejected, keeping current rates")
			return err
		}
		baseRates[symbol] = rate
	}

	derived := domain.CrossRates(s.baseCurrency, baseRates)
	now := s.CurrentTime()

	s.mu.Lock()
	s.rates.Merge(derived)
	for from, inner := range derived {
		for to := range inner {
			s.stamps[pairKey(from, to)] = rateStamp{updated: now, source: domain.RateSourceProvider}
		}
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.String("base", s.baseCurrency),
		slog.String("provider_date", quote.Date),
		slog.Int("pairs", countPairs(derived)))

	s.persist(ctx, derived, now)
	return nil
}

// persist upserts refreshed rates. Failures are logged; the in-memory table stays authoritative.
func (s *ExchangeRateService) persist(ctx context.Context, table domain.RateTable, now time.Time) {
	if s.rateRepo == nil {
		return
	}

	rates := make([]domain.ExchangeRate, 0, countPairs(table))
	for from, inner := range table {
		for to, rate := range inner {
			rates = append(rates, domain.ExchangeRate{
				FromCurrencyCode: from,
				ToCurrencyCode:   to,
				Rate:             rate,
				LastUpdated:      now,
				Source:           domain.RateSourceProvider,
			})
		}
	}

	saveCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	if err := s.rateRepo.SaveExchangeRates(saveCtx, rates); err != nil {
		s.LogError(ctx, apperrors.FromContext(err), "Failed to persist refreshed exchange rates", slog.Int("pairs", len(rates)))
	}
}

// LoadPersistedRates overwrites the table with the last persisted snapshot.
// A missing snapshot keeps the seed table.
func (s *ExchangeRateService) LoadPersistedRates(ctx context.Context) error {
	if s.rateRepo == nil {
		return nil
	}

	loadCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	persisted, err := s.rateRepo.ListExchangeRates(loadCtx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "No persisted exchange rates, keeping static table")
			return nil
		}
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Failed to load persisted exchange rates")
		return fmt.Errorf("failed to load persisted exchange rates: %w", err)
	}

	loaded := 0
	s.mu.Lock()
	for _, rate := range persisted {
		from := domain.NormalizeCurrencyCode(rate.FromCurrencyCode)
		to := domain.NormalizeCurrencyCode(rate.ToCurrencyCode)
		if from == "" || to == "" || from == to || !rate.Rate.IsPositive() {
			continue
		}
		s.rates.Set(from, to, rate.Rate)
		s.stamps[pairKey(from, to)] = rateStamp{updated: rate.LastUpdated, source: rate.Source}
		loaded++
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Loaded persisted exchange rates", slog.Int("pairs", loaded))
	return nil
}

func (s *ExchangeRateService) symbols() []string {
	out := make([]string, 0, len(s.currencies))
	seen := make(map[string]struct{}, len(s.currencies))
	for _, code := range s.currencies {
		code = domain.NormalizeCurrencyCode(code)
		if code == "" || code == s.baseCurrency {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func countPairs(table domain.RateTable) int {
	n := 0
	for _, inner := range table {
		n += len(inner)
	}
	return n
}
