package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
)

type shopLoanHandler struct {
	shopLoanService portssvc.ShopLoanSvcFacade
}

func newShopLoanHandler(ls portssvc.ShopLoanSvcFacade) *shopLoanHandler {
	return &shopLoanHandler{shopLoanService: ls}
}

// registerShopLoanRoutes registers inter-shop loan bookkeeping. Loans involve
// two shops, so creation and settlement are admin-only; per-shop listing is
// available to the shop's own operators.
func registerShopLoanRoutes(rg *gin.RouterGroup, shopLoanService portssvc.ShopLoanSvcFacade) {
	h := newShopLoanHandler(shopLoanService)

	loans := rg.Group("/loans", middleware.RequireAdmin())
	{
		loans.POST("", h.createLoan)
		loans.POST("/:loanID/settle", h.settleLoan)
	}

	rg.GET("/shops/:shopID/loans", middleware.RequireShopAccess(), h.listLoans)
}

// createLoan godoc
// @Summary Record a cash loan between two shops
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateShopLoanRequest true "Loan details"
// @Success 201 {object} dto.ShopLoanResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /loans [post]
func (h *shopLoanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateShopLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loan, err := h.shopLoanService.CreateLoan(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShopLoanResponse(loan))
}

// settleLoan godoc
// @Summary Mark a loan as settled
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} dto.ShopLoanResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 409 {object} map[string]string "Loan already settled"
// @Security BearerAuth
// @Router /loans/{loanID}/settle [post]
func (h *shopLoanHandler) settleLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loan, err := h.shopLoanService.SettleLoan(c.Request.Context(), c.Param("loanID"), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShopLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans a shop is party to
// @Tags loans
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ShopLoanResponse
// @Security BearerAuth
// @Router /shops/{shopID}/loans [get]
func (h *shopLoanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := paginationParams(c)
	loans, err := h.shopLoanService.ListLoans(c.Request.Context(), c.Param("shopID"), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListShopLoanResponse(loans))
}
