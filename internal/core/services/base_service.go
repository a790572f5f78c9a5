package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/middleware"
)

var errNoAuthorizer = fmt.Errorf("%w: no store authorizer configured", apperrors.ErrForbidden)

// BaseService provides common functionality for all services
type BaseService struct {
	StoreAuthorizer portssvc.StoreAuthorizerSvc
	Now             func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentTime returns the injected clock's time, or time.Now.
func (s *BaseService) CurrentTime() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AuthorizeStore checks that userID owns storeID and returns the store.
func (s *BaseService) AuthorizeStore(ctx context.Context, userID, storeID string) (*domain.Store, error) {
	if s.StoreAuthorizer != nil {
		return s.StoreAuthorizer.AuthorizeStoreOwner(ctx, userID, storeID)
	}
	s.LogWarn(ctx, "No store authorizer configured, denying access",
		slog.String("user_id", userID),
		slog.String("store_id", storeID))
	return nil, errNoAuthorizer
}

// withTimeout bounds ctx by d; a non-positive d only adds cancellation.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
