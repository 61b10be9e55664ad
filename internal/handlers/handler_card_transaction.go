package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
)

type cardTransactionHandler struct {
	cardTransactionService portssvc.CardTransactionSvcFacade
}

func newCardTransactionHandler(cs portssvc.CardTransactionSvcFacade) *cardTransactionHandler {
	return &cardTransactionHandler{cardTransactionService: cs}
}

func registerCardTransactionRoutes(rg *gin.RouterGroup, cardTransactionService portssvc.CardTransactionSvcFacade) {
	h := newCardTransactionHandler(cardTransactionService)

	txns := rg.Group("/shops/:shopID/card-transactions", middleware.RequireShopAccess())
	{
		txns.POST("", h.createCardTransaction)
		txns.GET("", h.listCardTransactions)
	}
}

// createCardTransaction godoc
// @Summary Record a card deposit or withdrawal
// @Tags card-transactions
// @Accept json
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param transaction body dto.CreateCardTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CardTransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /shops/{shopID}/card-transactions [post]
func (h *cardTransactionHandler) createCardTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCardTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.cardTransactionService.CreateCardTransaction(c.Request.Context(), c.Param("shopID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardTransactionResponse(txn))
}

// listCardTransactions godoc
// @Summary List card transactions for a shop
// @Tags card-transactions
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.CardTransactionResponse
// @Security BearerAuth
// @Router /shops/{shopID}/card-transactions [get]
func (h *cardTransactionHandler) listCardTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := paginationParams(c)
	txns, err := h.cardTransactionService.ListCardTransactions(c.Request.Context(), c.Param("shopID"), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCardTransactionResponse(txns))
}
