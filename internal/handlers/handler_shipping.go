package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/simpshopy/simpshopy_backend/internal/core/ports/services"
	"github.com/simpshopy/simpshopy_backend/internal/dto"
	"github.com/simpshopy/simpshopy_backend/internal/middleware"
)

// shippingHandler handles checkout shipping quotes and the merchant's zone/method setup.
type shippingHandler struct {
	shippingService portssvc.ShippingSvcFacade
}

func newShippingHandler(ss portssvc.ShippingSvcFacade) *shippingHandler {
	return &shippingHandler{shippingService: ss}
}

// registerShippingRoutes registers routes related to shipping.
func registerShippingRoutes(public, merchant *gin.RouterGroup, shippingService portssvc.ShippingSvcFacade) {
	h := newShippingHandler(shippingService)

	public.POST("/stores/:storeID/shipping/calculate", h.calculateShipping)

	shipping := merchant.Group("/stores/:storeID/shipping")
	{
		shipping.GET("/zones", h.listZones)
		shipping.POST("/zones", h.createZone)
		shipping.PATCH("/zones/:zoneID", h.updateZone)
		shipping.DELETE("/zones/:zoneID", h.deleteZone)

		shipping.GET("/methods", h.listMethods)
		shipping.POST("/methods", h.createMethod)
		shipping.PATCH("/methods/:methodID", h.updateMethod)
		shipping.DELETE("/methods/:methodID", h.deleteMethod)
	}
}

// calculateShipping godoc
// @Summary Calculate shipping options
// @Description Lists every active method that ships to the country, priced for the order subtotal.
// @Description A store without shipping configuration returns an empty list.
// @Tags shipping
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   request body dto.CalculateShippingRequest true "Destination and subtotal"
// @Success 200 {object} dto.CalculateShippingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Shipping configuration invalid"
// @Failure 500 {object} map[string]string "Failed to calculate shipping"
// @Router /stores/{storeID}/shipping/calculate [post]
func (h *shippingHandler) calculateShipping(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("storeID")

	var req dto.CalculateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	calcs, err := h.shippingService.CalculateShipping(c.Request.Context(), storeID, req.Country, req.Subtotal)
	if err != nil {
		respondWithError(c, logger.With(slog.String("store_id", storeID)), err, "Failed to calculate shipping")
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculateShippingResponse(storeID, req.Country, req.Subtotal, calcs))
}

// listZones godoc
// @Summary List shipping zones
// @Tags shipping
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Success 200 {array} dto.ShippingZoneResponse
// @Failure 403 {object} map[string]string "Not the store owner"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/zones [get]
func (h *shippingHandler) listZones(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	storeID := c.Param("storeID")

	zones, err := h.shippingService.ListZones(c.Request.Context(), storeID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list shipping zones")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShippingZoneResponse(zones))
}

// createZone godoc
// @Summary Create a shipping zone
// @Tags shipping
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   zone body dto.CreateShippingZoneRequest true "Zone details"
// @Success 201 {object} dto.ShippingZoneResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the store owner"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/zones [post]
func (h *shippingHandler) createZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	storeID := c.Param("storeID")

	var req dto.CreateShippingZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	zone, err := h.shippingService.CreateZone(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create shipping zone")
		return
	}
	logger.Info("Shipping zone created", slog.String("store_id", storeID), slog.String("zone_id", zone.ShippingZoneID))
	c.JSON(http.StatusCreated, dto.ToShippingZoneResponse(zone))
}

// updateZone godoc
// @Summary Update a shipping zone
// @Tags shipping
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   zoneID path string true "Zone ID"
// @Param   zone body dto.UpdateShippingZoneRequest true "Fields to change"
// @Success 200 {object} dto.ShippingZoneResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone not found"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/zones/{zoneID} [patch]
func (h *shippingHandler) updateZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateShippingZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	zone, err := h.shippingService.UpdateZone(c.Request.Context(), c.Param("storeID"), c.Param("zoneID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update shipping zone")
		return
	}
	c.JSON(http.StatusOK, dto.ToShippingZoneResponse(zone))
}

// deleteZone godoc
// @Summary Delete a shipping zone
// @Description Deletes the zone and every method scoped to it
// @Tags shipping
// @Param   storeID path string true "Store ID"
// @Param   zoneID path string true "Zone ID"
// @Success 204
// @Failure 404 {object} map[string]string "Zone not found"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/zones/{zoneID} [delete]
func (h *shippingHandler) deleteZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.shippingService.DeleteZone(c.Request.Context(), c.Param("storeID"), c.Param("zoneID"), userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete shipping zone")
		return
	}
	c.Status(http.StatusNoContent)
}

// listMethods godoc
// @Summary List shipping methods
// @Tags shipping
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Success 200 {array} dto.ShippingMethodResponse
// @Failure 403 {object} map[string]string "Not the store owner"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/methods [get]
func (h *shippingHandler) listMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	methods, err := h.shippingService.ListMethods(c.Request.Context(), c.Param("storeID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list shipping methods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShippingMethodResponse(methods))
}

// createMethod godoc
// @Summary Create a shipping method
// @Description A method without shippingZoneID ships everywhere
// @Tags shipping
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   method body dto.CreateShippingMethodRequest true "Method details"
// @Success 201 {object} dto.ShippingMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the store owner"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/methods [post]
func (h *shippingHandler) createMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	storeID := c.Param("storeID")

	var req dto.CreateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	method, err := h.shippingService.CreateMethod(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create shipping method")
		return
	}
	logger.Info("Shipping method created", slog.String("store_id", storeID), slog.String("method_id", method.ShippingMethodID))
	c.JSON(http.StatusCreated, dto.ToShippingMethodResponse(method))
}

// updateMethod godoc
// @Summary Update a shipping method
// @Tags shipping
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   methodID path string true "Method ID"
// @Param   method body dto.UpdateShippingMethodRequest true "Fields to change"
// @Success 200 {object} dto.ShippingMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Method not found"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/methods/{methodID} [patch]
func (h *shippingHandler) updateMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	method, err := h.shippingService.UpdateMethod(c.Request.Context(), c.Param("storeID"), c.Param("methodID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update shipping method")
		return
	}
	c.JSON(http.StatusOK, dto.ToShippingMethodResponse(method))
}

// deleteMethod godoc
// @Summary Delete a shipping method
// @Tags shipping
// @Param   storeID path string true "Store ID"
// @Param   methodID path string true "Method ID"
// @Success 204
// @Failure 404 {object} map[string]string "Method not found"
// @Security BearerAuth
// @Router /stores/{storeID}/shipping/methods/{methodID} [delete]
func (h *shippingHandler) deleteMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.shippingService.DeleteMethod(c.Request.Context(), c.Param("storeID"), c.Param("methodID"), userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete shipping method")
		return
	}
	c.Status(http.StatusNoContent)
}
