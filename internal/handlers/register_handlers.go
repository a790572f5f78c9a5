package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/simpshopy/simpshopy_backend/cmd/docs"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/middleware"
	"github.com/simpshopy/simpshopy_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Storefront routes are public and rate limited; merchant routes need a bearer token.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	r.GET("/health", getHealth)

	limiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	public := r.Group("/api/v1", middleware.RateLimit(limiter))
	merchant := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerExchangeRateRoutes(public, merchant, services.ExchangeRate)
	registerCurrencyRoutes(public, merchant, services.Currency, services.Store)
	registerShippingRoutes(public, merchant, services.Shipping)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerValidators installs the custom binding tags used by the DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("currency", validCurrencyCode); err != nil {
		slog.Error("Failed to register currency validator", slog.String("error", err.Error()))
	}
}

// validCurrencyCode accepts three ASCII letters in any case.
func validCurrencyCode(fl validator.FieldLevel) bool {
	code := domain.NormalizeCurrencyCode(fl.Field().String())
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// getHealth godoc
// @Summary Liveness probe
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
