package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portsrepo "github.com/simpshopy/simpshopy_backend/internal/core/ports/repositories"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
)

// StoreService handles store lookup and ownership checks.
type StoreService struct {
	BaseService
	storeRepo         portsrepo.StoreRepositoryFacade
	repositoryTimeout time.Duration
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo portsrepo.StoreRepositoryFacade, repositoryTimeout time.Duration) *StoreService {
	return &StoreService{storeRepo: repo, repositoryTimeout: repositoryTimeout}
}

var _ portssvc.StoreSvcFacade = (*StoreService)(nil)

// GetStore retrieves a store by ID.
func (s *StoreService) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: store id is required", apperrors.ErrValidation)
	}

	findCtx, cancel := withTimeout(ctx, s.repositoryTimeout)
	defer cancel()

	store, err := s.storeRepo.FindStoreByID(findCtx, storeID)
	if err != nil {
		err = apperrors.FromContext(err)
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find store", slog.String("store_id", storeID))
		}
		return nil, err
	}
	return store, nil
}

// AuthorizeStoreOwner returns the store when userID owns it.
func (s *StoreService) AuthorizeStoreOwner(ctx context.Context, userID, storeID string) (*domain.Store, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: no authenticated user", apperrors.ErrForbidden)
	}

	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if store.OwnerID != userID {
		s.LogWarn(ctx, "User attempted to act on a store they do not own",
			slog.String("user_id", userID),
			slog.String("store_id", storeID))
		return nil, fmt.Errorf("%w: user %s does not own store %s", apperrors.ErrForbidden, userID, storeID)
	}
	return store, nil
}
