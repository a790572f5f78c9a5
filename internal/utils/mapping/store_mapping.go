package mapping

import (
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/models"
)

// ToDomainStore converts a model Store to a domain Store
func ToDomainStore(m models.Store) domain.Store {
	return domain.Store{
		StoreID:     m.StoreID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Currency:    m.Currency,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainMonetaryRecord(m models.MonetaryRecord) domain.MonetaryRecord {
	return domain.MonetaryRecord{
		ID:     m.RecordID,
		Kind:   domain.RecordKind(m.Kind),
		Amount: m.Amount,
	}
}
