package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
)

// CurrencyService converts amounts and re-prices a store's persisted records.
type CurrencyService struct {
	BaseService

	rates             portssvc.ExchangeRateReaderSvc
	storeRepo         portsrepo.StoreRepositoryFacade
	monetaryRepo      portsrepo.MonetaryRecordRepository
	repositoryTimeout time.Duration
	recordTimeout     time.Duration
	concurrency       int
}

// CurrencyServiceOption configures a CurrencyService.
type CurrencyServiceOption func(*CurrencyService)

// WithStoreRecords enables store re-pricing.
func WithStoreRecords(storeRepo portsrepo.StoreRepositoryFacade, monetaryRepo portsrepo.MonetaryRecordRepository) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.storeRepo = storeRepo
		s.monetaryRepo = monetaryRepo
	}
}

// WithCurrencyStoreAuthorizer sets the ownership check used by ChangeStoreCurrency.
func WithCurrencyStoreAuthorizer(authorizer portssvc.StoreAuthorizerSvc) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.StoreAuthorizer = authorizer
	}
}

// WithBulkUpdateLimits sets the per-record timeout, the listing timeout and the
// number of records written concurrently in best-effort mode.
func WithBulkUpdateLimits(repositoryTimeout, recordTimeout time.Duration, concurrency int) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.repositoryTimeout = repositoryTimeout
		s.recordTimeout = recordTimeout
		if concurrency > 0 {
			s.concurrency = concurrency
		}
	}
}

// WithCurrencyClock replaces time.Now for conversion timestamps.
func WithCurrencyClock(now func() time.Time) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.Now = now
	}
}

// NewCurrencyService creates a CurrencyService resolving rates through rates.
func NewCurrencyService(rates portssvc.ExchangeRateReaderSvc, opts ...CurrencyServiceOption) *CurrencyService {
	s := &CurrencyService{
		rates:       rates,
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ConvertCurrency converts a non-negative amount, rounding half-up to 2 places.
// Same-currency conversions return the amount unchanged.
func (s *CurrencyService) ConvertCurrency(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionResult, error) {
	fromCode = domain.NormalizeCurrencyCode(fromCode)
	toCode = domain.NormalizeCurrencyCode(toCode)
	if fromCode == "" || toCode == "" {
		return nil, fmt.Errorf("%w: currency codes are required", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := s.CurrentTime()
	if fromCode == toCode {
		return &domain.ConversionResult{
			OriginalAmount:   amount,
			OriginalCurrency: fromCode,
			ConvertedAmount:  amount,
			TargetCurrency:   toCode,
			Rate:             decimal.NewFromInt(1),
			Timestamp:        now,
		}, nil
	}

	rate, err := s.rates.GetExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		s.LogWarn(ctx, "Currency conversion failed",
			slog.String("from", fromCode),
			slog.String("to", toCode),
			slog.String("error", err.Error()))
		return nil, &apperrors.ConversionError{Amount: amount, From: fromCode, To: toCode, Err: apperrors.FromContext(err)}
	}

	return &domain.ConversionResult{
		OriginalAmount:   amount,
		OriginalCurrency: fromCode,
		ConvertedAmount:  domain.ApplyRate(amount, rate.Rate),
		TargetCurrency:   toCode,
		Rate:             rate.Rate,
		Timestamp:        now,
	}, nil
}

// UpdateStoreAmounts converts every product price and order total of the store
// from oldCurrency to newCurrency.
//
// In best-effort mode each record is written on its own and failures are returned
// as *apperrors.BulkUpdateError alongside the summary. In transactional mode either
// every record is written or none is.
func (s *CurrencyService) UpdateStoreAmounts(ctx context.Context, storeID, oldCurrency, newCurrency string, mode domain.BulkUpdateMode) (*domain.BulkUpdateSummary, error) {
	logger := s.GetLogger(ctx)

	if mode == "" {
		mode = domain.BulkUpdateBestEffort
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown bulk update mode %q", apperrors.ErrValidation, mode)
	}
	if storeID == "" {
		return nil, fmt.Errorf("%w: store id is required", apperrors.ErrValidation)
	}
	oldCurrency = domain.NormalizeCurrencyCode(oldCurrency)
	newCurrency = domain.NormalizeCurrencyCode(newCurrency)
	if oldCurrency == "" || newCurrency == "" {
		return nil, fmt.Errorf("%w: currency codes are required", apperrors.ErrValidation)
	}
	if s.monetaryRepo == nil {
		return nil, fmt.Errorf("store re-pricing is not configured")
	}

	summary := &domain.BulkUpdateSummary{
		StoreID:      storeID,
		FromCurrency: oldCurrency,
		ToCurrency:   newCurrency,
		Rate:         decimal.NewFromInt(1),
		Mode:         mode,
	}
	if oldCurrency == newCurrency {
		return summary, nil
	}

	rate, err := s.rates.GetExchangeRate(ctx, oldCurrency, newCurrency)
	if err != nil {
		logger.Warn("Re-pricing aborted, no usable rate",
			slog.String("store_id", storeID),
			slog.String("from", oldCurrency),
			slog.String("to", newCurrency),
			slog.String("error", err.Error()))
		return nil, &apperrors.ConversionError{Amount: decimal.Zero, From: oldCurrency, To: newCurrency, Err: apperrors.FromContext(err)}
	}
	summary.Rate = rate.Rate

	listCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	records, err := s.monetaryRepo.ListStoreAmounts(listCtx, storeID)
	cancel()
	if err != nil {
		err = apperrors.FromContext(err)
		logger.Error("Failed to list store amounts", slog.String("store_id", storeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list amounts of store %s: %w", storeID, err)
	}

	converted := make([]domain.MonetaryRecord, len(records))
	for i, record := range records {
		record.Amount = domain.ApplyRate(record.Amount, rate.Rate)
		converted[i] = record
	}

	if mode == domain.BulkUpdateTransactional {
		txCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
		err := s.monetaryRepo.UpdateAmountsAtomically(txCtx, storeID, converted)
		cancel()
		if err != nil {
			err = apperrors.FromContext(err)
			logger.Error("Transactional re-pricing rolled back",
				slog.String("store_id", storeID),
				slog.Int("records", len(converted)),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("re-pricing of store %s rolled back: %w", storeID, err)
		}
		summary.Updated = len(converted)
		logger.Info("Store re-priced", slog.String("store_id", storeID), slog.String("mode", string(mode)), slog.Int("updated", summary.Updated))
		return summary, nil
	}

	causes := s.updateEach(ctx, storeID, converted)
	summary.Updated = len(converted) - len(causes)
	summary.Failed = len(causes)

	if len(causes) == 0 {
		logger.Info("Store re-priced", slog.String("store_id", storeID), slog.String("mode", string(mode)), slog.Int("updated", summary.Updated))
		return summary, nil
	}

	failedIDs := make([]string, 0, len(causes))
	for id := range causes {
		failedIDs = append(failedIDs, id)
	}
	sort.Strings(failedIDs)
	summary.FailedIDs = failedIDs

	logger.Warn("Store re-priced with failures",
		slog.String("store_id", storeID),
		slog.Int("updated", summary.Updated),
		slog.Int("failed", summary.Failed))
	return summary, &apperrors.BulkUpdateError{FailedIDs: failedIDs, Succeeded: summary.Updated, Causes: causes}
}

// updateEach writes records independently with bounded concurrency and returns the failures by record ID.
func (s *CurrencyService) updateEach(ctx context.Context, storeID string, records []domain.MonetaryRecord) map[string]error {
	var (
		mu     sync.Mutex
		causes = make(map[string]error)
		group  errgroup.Group
	)
	group.SetLimit(s.concurrency)

	for _, record := range records {
		group.Go(func() error {
			recordCtx, cancel := withTimeout(ctx, s.recordTimeout)
			defer cancel()

			if err := s.monetaryRepo.UpdateAmount(recordCtx, storeID, record); err != nil {
				err = apperrors.FromContext(err)
				s.LogDebug(ctx, "Record re-pricing failed",
					slog.String("record_id", record.ID),
					slog.String("kind", string(record.Kind)),
					slog.String("error", err.Error()))
				mu.Lock()
				causes[record.ID] = err
				mu.Unlock()
			}
			// Failures never cancel the remaining records.
			return nil
		})
	}
	_ = group.Wait()
	return causes
}

// ChangeStoreCurrency re-prices the store from its current currency and then records
// newCurrency as the store's currency. The currency is only persisted when every
// record was re-priced.
func (s *CurrencyService) ChangeStoreCurrency(ctx context.Context, storeID, newCurrency string, mode domain.BulkUpdateMode, userID string) (*domain.BulkUpdateSummary, error) {
	store, err := s.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	if s.storeRepo == nil {
		return nil, fmt.Errorf("store re-pricing is not configured")
	}

	newCurrency = domain.NormalizeCurrencyCode(newCurrency)
	summary, err := s.UpdateStoreAmounts(ctx, store.StoreID, store.Currency, newCurrency, mode)
	if err != nil {
		return summary, err
	}

	if domain.NormalizeCurrencyCode(store.Currency) == newCurrency {
		return summary, nil
	}

	updateCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()
	if err := s.storeRepo.UpdateStoreCurrency(updateCtx, store.StoreID, newCurrency, userID); err != nil {
		err = apperrors.FromContext(err)
		s.LogError(ctx, err, "Records re-priced but store currency not saved",
			slog.String("store_id", store.StoreID),
			slog.String("currency", newCurrency))
		return summary, fmt.Errorf("failed to save currency of store %s: %w", store.StoreID, err)
	}

	s.LogInfo(ctx, "Store currency changed",
		slog.String("store_id", store.StoreID),
		slog.String("from", store.Currency),
		slog.String("to", newCurrency))
	return summary, nil
}
