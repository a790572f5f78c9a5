package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyCode(t *testing.T) {
	assert.Equal(t, "1.52 EUR", FormatWithCurrencyCode(decimal.RequireFromString("1.524"), "EUR"))
	assert.Equal(t, "656 XOF", FormatWithCurrencyCode(decimal.RequireFromString("655.957"), "xof"))
	assert.Equal(t, "10.00 USD", FormatWithCurrencyCode(decimal.NewFromInt(10), "USD"))
	assert.Equal(t, "3.10 JPY", FormatWithCurrencyCode(decimal.RequireFromString("3.1"), "JPY"))
}

func TestCurrencyPrecision(t *testing.T) {
	assert.Equal(t, 0, CurrencyPrecision("XOF"))
	assert.Equal(t, 2, CurrencyPrecision("GBP"))
	assert.Equal(t, 2, CurrencyPrecision("ZZZ"))
}
