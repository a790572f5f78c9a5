package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Supported display currencies.
const (
	CurrencyXOF = "XOF"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
)

// rateScale is the number of decimal places kept when a rate is derived by division.
const rateScale = 18

// Where a rate came from.
const (
	RateSourceStatic   = "static"
	RateSourceProvider = "provider"
	RateSourceIdentity = "identity"
)

// XOFPerEUR is the fixed CFA franc peg.
var XOFPerEUR = decimal.RequireFromString("655.957")

// ExchangeRate is a directional multiplicative rate between two currencies.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	LastUpdated      time.Time       `json:"lastUpdated"`
	Source           string          `json:"source"`
}

// ConversionResult is the immutable outcome of a single conversion.
type ConversionResult struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	Timestamp        time.Time       `json:"timestamp"`
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RateTable maps from -> to -> rate.
type RateTable map[string]map[string]decimal.Decimal

// Lookup returns the tabulated rate for from -> to.
// A missing outer or inner key reports false.
func (t RateTable) Lookup(from, to string) (decimal.Decimal, bool) {
	inner, ok := t[from]
	if !ok {
		return decimal.Decimal{}, false
	}
	rate, ok := inner[to]
	return rate, ok
}

// Set overwrites a single directional rate.
func (t RateTable) Set(from, to string, rate decimal.Decimal) {
	inner, ok := t[from]
	if !ok {
		inner = make(map[string]decimal.Decimal)
		t[from] = inner
	}
	inner[to] = rate
}

// Merge overwrites t with every rate in other. Rates absent from other are kept.
func (t RateTable) Merge(other RateTable) {
	for from, inner := range other {
		for to, rate := range inner {
			t.Set(from, to, rate)
		}
	}
}

// Clone returns a deep copy.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	out.Merge(t)
	return out
}

// Currencies lists every code present on either side of the table, sorted.
func (t RateTable) Currencies() []string {
	seen := make(map[string]struct{})
	for from, inner := range t {
		seen[from] = struct{}{}
		for to := range inner {
			seen[to] = struct{}{}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CrossRates derives every directional pair among base and the keys of baseRates,
// where baseRates[X] is the rate base -> X. Pairs that do not involve base are
// triangulated as (1 / rate(base->A)) * rate(base->B). Non-positive rates are skipped.
func CrossRates(base string, baseRates map[string]decimal.Decimal) RateTable {
	table := make(RateTable)
	one := decimal.NewFromInt(1)

	codes := make([]string, 0, len(baseRates))
	for code, rate := range baseRates {
		if code == base || !rate.IsPositive() {
			continue
		}
		codes = append(codes, code)
		table.Set(base, code, rate)
		table.Set(code, base, one.DivRound(rate, rateScale))
	}

	for _, a := range codes {
		for _, b := range codes {
			if a == b {
				continue
			}
			table.Set(a, b, baseRates[b].DivRound(baseRates[a], rateScale))
		}
	}
	return table
}

// SeedRateTable builds the offline table from the XOF peg and the given EUR quotes.
func SeedRateTable(usdPerEUR, gbpPerEUR decimal.Decimal) RateTable {
	return CrossRates(CurrencyEUR, map[string]decimal.Decimal{
		CurrencyXOF: XOFPerEUR,
		CurrencyUSD: usdPerEUR,
		CurrencyGBP: gbpPerEUR,
	})
}
