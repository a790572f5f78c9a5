package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateQuote is one successful answer from an FX provider: rates quoted per 1 unit of Base.
type RateQuote struct {
	Base  string
	Date  string
	Rates map[string]decimal.Decimal
}

// RateProvider fetches live exchange rates from outside the process.
type RateProvider interface {
	// FetchRates returns rates base -> symbol for each requested symbol.
	// Every symbol is present and positive when err is nil.
	FetchRates(ctx context.Context, base string, symbols []string) (*RateQuote, error)
}
