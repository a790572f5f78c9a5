package domain

import "github.com/shopspring/decimal"

// Store is a merchant's tenant. Currency is the display currency every product
// price and order total is denominated in.
type Store struct {
	StoreID  string `json:"storeID"`
	OwnerID  string `json:"ownerID"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	AuditFields
}

// RecordKind names the table a MonetaryRecord belongs to.
type RecordKind string

const (
	RecordProduct RecordKind = "product"
	RecordOrder   RecordKind = "order"
)

// MonetaryRecord is one re-priceable amount: a product price or an order total.
type MonetaryRecord struct {
	ID     string          `json:"id"`
	Kind   RecordKind      `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// BulkUpdateMode selects how a store re-pricing handles failures.
type BulkUpdateMode string

const (
	// BulkUpdateBestEffort writes every record independently and reports failures afterwards.
	BulkUpdateBestEffort BulkUpdateMode = "best_effort"
	// BulkUpdateTransactional writes all records in one transaction or none.
	BulkUpdateTransactional BulkUpdateMode = "transactional"
)

// Valid reports whether m is a known mode.
func (m BulkUpdateMode) Valid() bool {
	return m == BulkUpdateBestEffort || m == BulkUpdateTransactional
}

// BulkUpdateSummary describes a finished store re-pricing.
type BulkUpdateSummary struct {
	StoreID      string          `json:"storeID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Mode         BulkUpdateMode  `json:"mode"`
	Updated      int             `json:"updated"`
	Failed       int             `json:"failed"`
	FailedIDs    []string        `json:"failedIDs,omitempty"`
}

// Succeeded reports whether every record was re-priced.
func (s BulkUpdateSummary) Succeeded() bool {
	return s.Failed == 0
}
