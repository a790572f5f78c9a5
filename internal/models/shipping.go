package models

import (
	"github.com/shopspring/decimal"
)

// ShippingZone is a row of shipping_zones.
type ShippingZone struct {
	ShippingZoneID string   `db:"shipping_zone_id"`
	StoreID        string   `db:"store_id"`
	Name           string   `db:"name"`
	Description    *string  `db:"description"`
	Countries      []string `db:"countries"`
	IsActive       bool     `db:"is_active"`
	AuditFields
}

// ShippingMethod is a row of shipping_methods.
type ShippingMethod struct {
	ShippingMethodID      string           `db:"shipping_method_id"`
	StoreID               string           `db:"store_id"`
	ShippingZoneID        *string          `db:"shipping_zone_id"`
	Name                  string           `db:"name"`
	Price                 decimal.Decimal  `db:"price"`
	FreeShippingThreshold *decimal.Decimal `db:"free_shipping_threshold"`
	IsActive              bool             `db:"is_active"`
	SortOrder             int              `db:"sort_order"`
	AuditFields
}
