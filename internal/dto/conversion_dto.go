package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/utils"
)

// ConvertCurrencyRequest defines the body of a conversion request.
type ConvertCurrencyRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currency"`
}

// ConversionResponse defines the structure for API responses containing a conversion.
type ConversionResponse struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	Timestamp        time.Time       `json:"timestamp"`
	Display          string          `json:"display"` // e.g. "1.52 EUR", "655 XOF"
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(result *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		OriginalAmount:   result.OriginalAmount,
		OriginalCurrency: result.OriginalCurrency,
		ConvertedAmount:  result.ConvertedAmount,
		TargetCurrency:   result.TargetCurrency,
		Rate:             result.Rate,
		Timestamp:        result.Timestamp,
		Display:          utils.FormatWithCurrencyCode(result.ConvertedAmount, result.TargetCurrency),
	}
}

// ChangeStoreCurrencyRequest switches a store's display currency and re-prices its records.
type ChangeStoreCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
	Mode     string `json:"mode" binding:"omitempty,oneof=best_effort transactional"`
}

// RepriceStoreRequest re-prices a store's records between two explicit currencies
// without touching the store's currency setting.
type RepriceStoreRequest struct {
	FromCurrency string `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `json:"toCurrency" binding:"required,currency"`
	Mode         string `json:"mode" binding:"omitempty,oneof=best_effort transactional"`
}

// BulkUpdateResponse reports the outcome of a re-pricing.
type BulkUpdateResponse struct {
	Success bool `json:"success"`
	domain.BulkUpdateSummary
}

// ToBulkUpdateResponse converts a summary to BulkUpdateResponse DTO
func ToBulkUpdateResponse(summary *domain.BulkUpdateSummary) BulkUpdateResponse {
	return BulkUpdateResponse{
		Success:           summary.Succeeded(),
		BulkUpdateSummary: *summary,
	}
}

// BulkUpdateModeOrDefault maps an optional request mode onto a domain mode.
func BulkUpdateModeOrDefault(mode string) domain.BulkUpdateMode {
	if mode == "" {
		return domain.BulkUpdateBestEffort
	}
	return domain.BulkUpdateMode(mode)
}
