package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/dto"
	"github.com/SscSPs/sky_take_out/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shopHandler handles HTTP requests related to the shop status.
type shopHandler struct {
	shopService portssvc.ShopSvc
}

func newShopHandler(ss portssvc.ShopSvc) *shopHandler {
	return &shopHandler{shopService: ss}
}

// registerShopRoutes registers routes related to the shop status.
func registerShopRoutes(rg *gin.RouterGroup, shopService portssvc.ShopSvc) {
	h := newShopHandler(shopService)

	shop := rg.Group("/shop")
	{
		shop.GET("/status", h.getStatus)
		shop.PUT("/status/:status", h.setStatus)
	}
}

// getStatus godoc
// @Summary Get shop status
// @Description Returns whether the shop currently accepts orders
// @Tags shop
// @Produce json
// @Success 200 {object} dto.ShopStatusResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to read shop status"
// @Security BearerAuth
// @Router /shop/status [get]
func (h *shopHandler) getStatus(c *gin.Context) {
	status, err := h.shopService.GetStatus(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read shop status")
		return
	}
	c.JSON(http.StatusOK, dto.ToShopStatusResponse(status))
}

// setStatus godoc
// @Summary Set shop status
// @Description Opens (1) or closes (0) the shop
// @Tags shop
// @Produce json
// @Param status path int true "1 open, 0 closed" Enums(0, 1)
// @Success 200 {object} dto.ShopStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to set shop status"
// @Security BearerAuth
// @Router /shop/status/{status} [put]
func (h *shopHandler) setStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetShopStatusRequest
	if err := c.ShouldBindUri(&req); err != nil {
		logger.Warn("Invalid shop status", slog.String("status", c.Param("status")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "status must be 0 or 1"})
		return
	}

	status := domain.ShopStatus(req.Status)
	if err := h.shopService.SetStatus(c.Request.Context(), status); err != nil {
		respondError(c, err, "Failed to set shop status")
		return
	}
	c.JSON(http.StatusOK, dto.ToShopStatusResponse(status))
}
