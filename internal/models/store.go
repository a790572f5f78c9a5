package models

import "github.com/shopspring/decimal"

// Store is a row of stores.
type Store struct {
	StoreID  string `db:"store_id"`
	OwnerID  string `db:"owner_id"`
	Name     string `db:"name"`
	Currency string `db:"currency"`
	AuditFields
}

// MonetaryRecord is a projected row of products or orders: one re-priceable amount.
type MonetaryRecord struct {
	RecordID string          `db:"record_id"`
	Kind     string          `db:"kind"`
	Amount   decimal.Decimal `db:"amount"`
}
