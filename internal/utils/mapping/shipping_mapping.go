package mapping

import (
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	"github.com/simpshopy/simpshopy_backend/internal/models"
)

// ToModelShippingZone converts a domain ShippingZone to a model ShippingZone
func ToModelShippingZone(d domain.ShippingZone) models.ShippingZone {
	return models.ShippingZone{
		ShippingZoneID: d.ShippingZoneID,
		StoreID:        d.StoreID,
		Name:           d.Name,
		Description:    d.Description,
		Countries:      d.Countries,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShippingZone converts a model ShippingZone to a domain ShippingZone
func ToDomainShippingZone(m models.ShippingZone) domain.ShippingZone {
	countries := m.Countries
	if countries == nil {
		countries = []string{}
	}
	return domain.ShippingZone{
		ShippingZoneID: m.ShippingZoneID,
		StoreID:        m.StoreID,
		Name:           m.Name,
		Description:    m.Description,
		Countries:      countries,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelShippingMethod converts a domain ShippingMethod to a model ShippingMethod
func ToModelShippingMethod(d domain.ShippingMethod) models.ShippingMethod {
	return models.ShippingMethod{
		ShippingMethodID:      d.ShippingMethodID,
		StoreID:               d.StoreID,
		ShippingZoneID:        d.ShippingZoneID,
		Name:                  d.Name,
		Price:                 d.Price,
		FreeShippingThreshold: d.FreeShippingThreshold,
		IsActive:              d.IsActive,
		SortOrder:             d.SortOrder,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShippingMethod converts a model ShippingMethod to a domain ShippingMethod
func ToDomainShippingMethod(m models.ShippingMethod) domain.ShippingMethod {
	return domain.ShippingMethod{
		ShippingMethodID:      m.ShippingMethodID,
		StoreID:               m.StoreID,
		ShippingZoneID:        m.ShippingZoneID,
		Name:                  m.Name,
		Price:                 m.Price,
		FreeShippingThreshold: m.FreeShippingThreshold,
		IsActive:              m.IsActive,
		SortOrder:             m.SortOrder,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
