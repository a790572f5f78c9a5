package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the precision every converted amount is rounded to.
const MoneyPlaces = 2

// RoundMoney rounds half away from zero to two places. Amounts handled here are
// never negative, so this is plain half-up: 1.005 -> 1.01, 1.004 -> 1.00.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// ApplyRate multiplies amount by rate and rounds the product with RoundMoney.
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(rate))
}
