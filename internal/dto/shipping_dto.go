package dto

import (
	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// CreateShippingZoneRequest defines the structure for creating a shipping zone.
type CreateShippingZoneRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description *string  `json:"description"`
	Countries   []string `json:"countries" binding:"required,min=1,dive,required"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateShippingZoneRequest updates only the fields that are present.
type UpdateShippingZoneRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description"`
	Countries   []string `json:"countries" binding:"omitempty,min=1,dive,required"`
	IsActive    *bool    `json:"isActive"`
}

// CreateShippingMethodRequest defines the structure for creating a shipping method.
// A missing shippingZoneID makes the method available in every country.
type CreateShippingMethodRequest struct {
	ShippingZoneID        *string          `json:"shippingZoneID"`
	Name                  string           `json:"name" binding:"required,max=100"`
	Price                 decimal.Decimal  `json:"price"`
	FreeShippingThreshold *decimal.Decimal `json:"freeShippingThreshold"`
	IsActive              *bool            `json:"isActive"`
	SortOrder             int              `json:"sortOrder"`
}

// UpdateShippingMethodRequest updates only the fields that are present.
type UpdateShippingMethodRequest struct {
	ShippingZoneID        *string          `json:"shippingZoneID"`
	MakeGlobal            bool             `json:"makeGlobal"` // drops the zone, wins over shippingZoneID
	Name                  *string          `json:"name" binding:"omitempty,max=100"`
	Price                 *decimal.Decimal `json:"price"`
	FreeShippingThreshold *decimal.Decimal `json:"freeShippingThreshold"`
	ClearThreshold        bool             `json:"clearThreshold"`
	IsActive              *bool            `json:"isActive"`
	SortOrder             *int             `json:"sortOrder"`
}

// CalculateShippingRequest asks for the shipping options of an order.
type CalculateShippingRequest struct {
	Country  string          `json:"country" binding:"required"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ShippingZoneResponse defines the structure for API responses containing a shipping zone.
type ShippingZoneResponse struct {
	ShippingZoneID string   `json:"shippingZoneID"`
	StoreID        string   `json:"storeID"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Countries      []string `json:"countries"`
	IsActive       bool     `json:"isActive"`
}

// ShippingMethodResponse defines the structure for API responses containing a shipping method.
type ShippingMethodResponse struct {
	ShippingMethodID      string           `json:"shippingMethodID"`
	StoreID               string           `json:"storeID"`
	ShippingZoneID        *string          `json:"shippingZoneID,omitempty"`
	Name                  string           `json:"name"`
	Price                 decimal.Decimal  `json:"price"`
	FreeShippingThreshold *decimal.Decimal `json:"freeShippingThreshold,omitempty"`
	IsActive              bool             `json:"isActive"`
	SortOrder             int              `json:"sortOrder"`
}

// ShippingOptionResponse is one priced method in a shipping calculation.
type ShippingOptionResponse struct {
	ShippingMethodID string          `json:"shippingMethodID"`
	Name             string          `json:"name"`
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	CalculatedPrice  decimal.Decimal `json:"calculatedPrice"`
	IsFree           bool            `json:"isFree"`
	Reason           string          `json:"reason"`
	SortOrder        int             `json:"sortOrder"`
}

// CalculateShippingResponse lists every eligible option; the checkout picks one.
type CalculateShippingResponse struct {
	StoreID  string                   `json:"storeID"`
	Country  string                   `json:"country"`
	Subtotal decimal.Decimal          `json:"subtotal"`
	Options  []ShippingOptionResponse `json:"options"`
}

// ToShippingZoneResponse converts a domain.ShippingZone to ShippingZoneResponse DTO
func ToShippingZoneResponse(zone *domain.ShippingZone) ShippingZoneResponse {
	return ShippingZoneResponse{
		ShippingZoneID: zone.ShippingZoneID,
		StoreID:        zone.StoreID,
		Name:           zone.Name,
		Description:    zone.Description,
		Countries:      zone.Countries,
		IsActive:       zone.IsActive,
	}
}

// ToListShippingZoneResponse converts zones to their DTOs.
func ToListShippingZoneResponse(zones []domain.ShippingZone) []ShippingZoneResponse {
	responses := make([]ShippingZoneResponse, len(zones))
	for i := range zones {
		responses[i] = ToShippingZoneResponse(&zones[i])
	}
	return responses
}

// ToShippingMethodResponse converts a domain.ShippingMethod to ShippingMethodResponse DTO
func ToShippingMethodResponse(method *domain.ShippingMethod) ShippingMethodResponse {
	return ShippingMethodResponse{
		ShippingMethodID:      method.ShippingMethodID,
		StoreID:               method.StoreID,
		ShippingZoneID:        method.ShippingZoneID,
		Name:                  method.Name,
		Price:                 method.Price,
		FreeShippingThreshold: method.FreeShippingThreshold,
		IsActive:              method.IsActive,
		SortOrder:             method.SortOrder,
	}
}

// ToListShippingMethodResponse converts methods to their DTOs.
func ToListShippingMethodResponse(methods []domain.ShippingMethod) []ShippingMethodResponse {
	responses := make([]ShippingMethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToShippingMethodResponse(&methods[i])
	}
	return responses
}

// ToCalculateShippingResponse converts calculations to the checkout response.
func ToCalculateShippingResponse(storeID, country string, subtotal decimal.Decimal, calcs []domain.ShippingCalculation) CalculateShippingResponse {
	options := make([]ShippingOptionResponse, len(calcs))
	for i, calc := range calcs {
		options[i] = ShippingOptionResponse{
			ShippingMethodID: calc.Method.ShippingMethodID,
			Name:             calc.Method.Name,
			OriginalPrice:    calc.OriginalPrice,
			CalculatedPrice:  calc.CalculatedPrice,
			IsFree:           calc.IsFree,
			Reason:           calc.Reason,
			SortOrder:        calc.Method.SortOrder,
		}
	}
	return CalculateShippingResponse{
		StoreID:  storeID,
		Country:  country,
		Subtotal: subtotal,
		Options:  options,
	}
}
