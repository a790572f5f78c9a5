package services

import (
	"context"

	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
)

// StoreAuthorizerSvc checks that a merchant acts on a store they own
type StoreAuthorizerSvc interface {
	// AuthorizeStoreOwner returns the store when userID owns it, apperrors.ErrForbidden otherwise.
	AuthorizeStoreOwner(ctx context.Context, userID, storeID string) (*domain.Store, error)
}

// StoreReaderSvc defines read operations for stores
type StoreReaderSvc interface {
	GetStore(ctx context.Context, storeID string) (*domain.Store, error)
}

// StoreSvcFacade combines all store-related service interfaces
type StoreSvcFacade interface {
	StoreAuthorizerSvc
	StoreReaderSvc
}
