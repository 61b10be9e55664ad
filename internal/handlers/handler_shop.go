package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
)

type shopHandler struct {
	shopService portssvc.ShopSvcFacade
}

func newShopHandler(ss portssvc.ShopSvcFacade) *shopHandler {
	return &shopHandler{shopService: ss}
}

// registerShopRoutes registers shop management. Creation is admin-only;
// reads are open to any authenticated operator so the mobile client can
// render catalogs.
func registerShopRoutes(rg *gin.RouterGroup, shopService portssvc.ShopSvcFacade) {
	h := newShopHandler(shopService)

	shops := rg.Group("/shops")
	{
		shops.POST("", middleware.RequireAdmin(), h.createShop)
		shops.GET("", h.listShops)
		shops.GET("/:shopID", middleware.RequireShopAccess(), h.getShop)
	}
}

// createShop godoc
// @Summary Create a shop
// @Description Registers a shop together with its electronic-money provider and credit-network catalogs
// @Tags shops
// @Accept json
// @Produce json
// @Param shop body dto.CreateShopRequest true "Shop details"
// @Success 201 {object} dto.ShopResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /shops [post]
func (h *shopHandler) createShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShopResponse(shop))
}

// getShop godoc
// @Summary Get a shop
// @Tags shops
// @Produce json
// @Param shopID path string true "Shop ID"
// @Success 200 {object} dto.ShopResponse
// @Failure 404 {object} map[string]string "Shop not found"
// @Security BearerAuth
// @Router /shops/{shopID} [get]
func (h *shopHandler) getShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shop, err := h.shopService.GetShopByID(c.Request.Context(), c.Param("shopID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop))
}

// listShops godoc
// @Summary List shops
// @Tags shops
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ShopResponse
// @Security BearerAuth
// @Router /shops [get]
func (h *shopHandler) listShops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := paginationParams(c)
	shops, err := h.shopService.ListShops(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListShopResponse(shops))
}
