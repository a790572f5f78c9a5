package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Reasons attached to a ShippingCalculation.
const (
	ReasonFreeMethod   = "free shipping"
	ReasonStandardRate = "standard rate"
)

// ShippingZone is a named set of countries sharing shipping rules within one store.
type ShippingZone struct {
	ShippingZoneID string   `json:"shippingZoneID"`
	StoreID        string   `json:"storeID"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Countries      []string `json:"countries"`
	IsActive       bool     `json:"isActive"`
	AuditFields
}

// Covers reports whether the zone is selectable for country. Inactive zones and
// zones without countries never are.
func (z ShippingZone) Covers(country string) bool {
	if !z.IsActive || len(z.Countries) == 0 {
		return false
	}
	for _, c := range z.Countries {
		if SameCountry(c, country) {
			return true
		}
	}
	return false
}

// ShippingMethod is a priced delivery option. A nil ShippingZoneID makes it global.
type ShippingMethod struct {
	ShippingMethodID      string           `json:"shippingMethodID"`
	StoreID               string           `json:"storeID"`
	ShippingZoneID        *string          `json:"shippingZoneID,omitempty"`
	Name                  string           `json:"name"`
	Price                 decimal.Decimal  `json:"price"`
	FreeShippingThreshold *decimal.Decimal `json:"freeShippingThreshold,omitempty"`
	IsActive              bool             `json:"isActive"`
	SortOrder             int              `json:"sortOrder"`
	AuditFields
}

// IsGlobal reports whether the method ships to every country.
func (m ShippingMethod) IsGlobal() bool {
	return m.ShippingZoneID == nil
}

// Quote prices the method for an order subtotal.
func (m ShippingMethod) Quote(subtotal decimal.Decimal) ShippingCalculation {
	calc := ShippingCalculation{
		Method:        m,
		OriginalPrice: m.Price,
	}
	switch {
	case m.Price.IsZero():
		calc.CalculatedPrice = decimal.Zero
		calc.IsFree = true
		calc.Reason = ReasonFreeMethod
	case m.FreeShippingThreshold != nil && subtotal.GreaterThanOrEqual(*m.FreeShippingThreshold):
		calc.CalculatedPrice = decimal.Zero
		calc.IsFree = true
		calc.Reason = fmt.Sprintf("free shipping on orders of %s or more", m.FreeShippingThreshold.String())
	default:
		calc.CalculatedPrice = m.Price
		calc.IsFree = false
		calc.Reason = ReasonStandardRate
	}
	return calc
}

// ShippingCalculation is the chargeable price of one method for one order. Not persisted.
type ShippingCalculation struct {
	Method          ShippingMethod  `json:"method"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	CalculatedPrice decimal.Decimal `json:"calculatedPrice"`
	IsFree          bool            `json:"isFree"`
	Reason          string          `json:"reason"`
}
