package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates: the last known rate of one directional pair.
type ExchangeRate struct {
	FromCurrencyCode string          `db:"from_currency_code"` // PK part
	ToCurrencyCode   string          `db:"to_currency_code"`   // PK part
	Rate             decimal.Decimal `db:"rate"`
	Source           string          `db:"source"`
	LastUpdated      time.Time       `db:"last_updated"`
}
