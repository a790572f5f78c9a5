package utils

import (
	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// currencyPrecision is the number of minor-unit digits shown for each currency.
// XOF has no minor unit in circulation.
var currencyPrecision = map[string]int{
	domain.CurrencyXOF: 0,
	domain.CurrencyEUR: 2,
	domain.CurrencyUSD: 2,
	domain.CurrencyGBP: 2,
}

// CurrencyPrecision returns the display precision of a currency, 2 when unknown.
func CurrencyPrecision(code string) int {
	if p, ok := currencyPrecision[domain.NormalizeCurrencyCode(code)]; ok {
		return p
	}
	return domain.MoneyPlaces
}

// FormatWithCurrencyCode formats an amount for display with its currency code.
// Example: 1.524 EUR returns "1.52 EUR"
// Example: 655.957 XOF returns "656 XOF"
func FormatWithCurrencyCode(amount decimal.Decimal, code string) string {
	return FormatWithPrecision(amount, CurrencyPrecision(code)) + " " + domain.NormalizeCurrencyCode(code)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
