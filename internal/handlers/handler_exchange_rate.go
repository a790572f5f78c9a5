package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
	"github.com/simpshopy/simpshopy_backend/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(public, merchant *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := public.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.GET("/:from/:to", h.getExchangeRate)
	}
	merchant.POST("/exchange-rates/refresh", h.refreshExchangeRates)
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Returns every known directional rate, including derived cross rates
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	rates := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListExchangeRatesResponse{Rates: dto.ToListExchangeRateResponse(rates)})
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the current rate for a given currency pair
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// refreshExchangeRates godoc
// @Summary Refresh exchange rates
// @Description Pulls fresh rates from the FX provider. On failure the previous rates stay in use.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RefreshExchangeRatesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Provider unavailable"
// @Failure 504 {object} map[string]string "Provider timed out"
// @Security BearerAuth
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to refresh exchange rates")

	if err := h.exchangeRateService.RefreshRates(c.Request.Context()); err != nil {
		respondWithError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	rates := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	logger.Info("Exchange rates refreshed", slog.Int("pairs", len(rates)))
	c.JSON(http.StatusOK, dto.RefreshExchangeRatesResponse{
		Message: "Exchange rates refreshed",
		Rates:   dto.ToListExchangeRateResponse(rates),
	})
}
