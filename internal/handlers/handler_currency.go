package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/domain"
	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
	"github.com/simpshopy/simpshopy_backend/internal/middleware"
)

// currencyHandler handles conversions and store re-pricing.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	storeService    portssvc.StoreSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, ss portssvc.StoreSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		storeService:    ss,
	}
}

// registerCurrencyRoutes registers routes related to conversions and store currencies.
func registerCurrencyRoutes(public, merchant *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, storeService portssvc.StoreSvcFacade) {
	h := newCurrencyHandler(currencyService, storeService)

	public.POST("/currency/convert", h.convertCurrency)

	stores := merchant.Group("/stores/:storeID/currency")
	{
		stores.PUT("", h.changeStoreCurrency)
		stores.POST("/reprice", h.repriceStore)
	}
}

// convertCurrency godoc
// @Summary Convert an amount
// @Description Converts an amount between two currencies with the current rate, rounded half away from zero to 2 places
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertCurrencyRequest true "Conversion details"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No rate for the pair"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /currency/convert [post]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.currencyService.ConvertCurrency(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondWithError(c, logger.With(
			slog.String("from", req.FromCurrency),
			slog.String("to", req.ToCurrency),
		), err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// changeStoreCurrency godoc
// @Summary Change a store's currency
// @Description Re-prices every product and order of the store into the new currency, then switches the store currency.
// @Description The currency only changes when every record was re-priced.
// @Tags stores
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   request body dto.ChangeStoreCurrencyRequest true "Target currency and mode"
// @Success 200 {object} dto.BulkUpdateResponse
// @Success 207 {object} dto.BulkUpdateResponse "Some records could not be re-priced"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the store owner"
// @Failure 404 {object} map[string]string "No rate for the pair"
// @Failure 500 {object} map[string]string "Failed to change store currency"
// @Security BearerAuth
// @Router /stores/{storeID}/currency [put]
func (h *currencyHandler) changeStoreCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	storeID := c.Param("storeID")

	var req dto.ChangeStoreCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("store_id", storeID), slog.String("user_id", userID), slog.String("currency", req.Currency))
	logger.Info("Received request to change store currency")

	summary, err := h.currencyService.ChangeStoreCurrency(c.Request.Context(), storeID, req.Currency, dto.BulkUpdateModeOrDefault(req.Mode), userID)
	respondWithSummary(c, logger, summary, err, "Failed to change store currency")
}

// repriceStore godoc
// @Summary Re-price store amounts
// @Description Converts every product price and order total of the store between two explicit currencies.
// @Description The store's currency setting is left untouched.
// @Tags stores
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   request body dto.RepriceStoreRequest true "Currencies and mode"
// @Success 200 {object} dto.BulkUpdateResponse
// @Success 207 {object} dto.BulkUpdateResponse "Some records could not be re-priced"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the store owner"
// @Failure 500 {object} map[string]string "Failed to re-price store"
// @Security BearerAuth
// @Router /stores/{storeID}/currency/reprice [post]
func (h *currencyHandler) repriceStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	storeID := c.Param("storeID")

	var req dto.RepriceStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("store_id", storeID), slog.String("user_id", userID))

	if _, err := h.storeService.AuthorizeStoreOwner(c.Request.Context(), userID, storeID); err != nil {
		respondWithError(c, logger, err, "Failed to authorize store")
		return
	}

	summary, err := h.currencyService.UpdateStoreAmounts(c.Request.Context(), storeID, req.FromCurrency, req.ToCurrency, dto.BulkUpdateModeOrDefault(req.Mode))
	respondWithSummary(c, logger, summary, err, "Failed to re-price store")
}

// respondWithSummary writes a finished re-pricing. A partial failure still
// carries the summary so the merchant knows which records to retry.
func respondWithSummary(c *gin.Context, logger *slog.Logger, summary *domain.BulkUpdateSummary, err error, failureMsg string) {
	var bulkErr *apperrors.BulkUpdateError
	if errors.As(err, &bulkErr) && summary != nil {
		logger.Warn("Re-pricing partially failed",
			slog.Int("updated", summary.Updated),
			slog.Int("failed", summary.Failed),
			slog.Any("failed_ids", summary.FailedIDs),
		)
		c.JSON(http.StatusMultiStatus, dto.ToBulkUpdateResponse(summary))
		return
	}
	if err != nil {
		respondWithError(c, logger, err, failureMsg)
		return
	}

	logger.Info("Re-pricing finished", slog.Int("updated", summary.Updated))
	c.JSON(http.StatusOK, dto.ToBulkUpdateResponse(summary))
}
