package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/core/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
	"github.com/boutikapp/caisse-backend/internal/utils"
)

// operationHandler handles the daily register workflow: period state,
// opening carry-forward, the closing action and history.
type operationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
	posthogClient         *utils.PosthogClientWrapper
}

func newOperationHandler(rs portssvc.ReconciliationSvcFacade, posthogClient *utils.PosthogClientWrapper) *operationHandler {
	return &operationHandler{reconciliationService: rs, posthogClient: posthogClient}
}

// RegisterOperationRoutes registers the register workflow routes under a shop.
// Access requires the operator to be bound to the shop (or be an admin).
func RegisterOperationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newOperationHandler(reconciliationService, posthogClient)

	ops := rg.Group("/shops/:shopID/operations", middleware.RequireShopAccess())
	{
		ops.GET("", h.listOperations)
		ops.GET("/state", h.getPeriodState)
		ops.GET("/opening", h.getOpening)
		ops.POST("/close", h.closeOperation)
		ops.GET("/:operationID", h.getOperation)
	}
}

// dayPeriodQuery parses the date and period query parameters shared by the
// state and opening endpoints.
func dayPeriodQuery(c *gin.Context) (day, period string, ok bool) {
	day = c.Query("date")
	period = c.Query("period")
	if day == "" || period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and period query parameters are required"})
		return "", "", false
	}
	if _, err := services.ParseDay(day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in 2006-01-02 form"})
		return "", "", false
	}
	if !domain.Period(period).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be morning or evening"})
		return "", "", false
	}
	return day, period, true
}

// getPeriodState godoc
// @Summary Get a period's open/closed state
// @Description Reports whether the closing record already exists for the shop, date and period
// @Tags operations
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param date query string true "Calendar day (2006-01-02)"
// @Param period query string true "morning or evening"
// @Success 200 {object} dto.PeriodStateResponse
// @Security BearerAuth
// @Router /shops/{shopID}/operations/state [get]
func (h *operationHandler) getPeriodState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dayStr, periodStr, ok := dayPeriodQuery(c)
	if !ok {
		return
	}
	day, _ := services.ParseDay(dayStr)

	closed, err := h.reconciliationService.IsClosed(c.Request.Context(), c.Param("shopID"), day, domain.Period(periodStr))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PeriodStateResponse{
		ShopID: c.Param("shopID"),
		Date:   dayStr,
		Period: domain.Period(periodStr),
		Closed: closed,
	})
}

// getOpening godoc
// @Summary Resolve a period's opening figures
// @Description Computes opening figures from the predecessor record: previous evening for a morning, same-day morning for an evening. Advisories flag missing predecessors or figures.
// @Tags operations
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param date query string true "Calendar day (2006-01-02)"
// @Param period query string true "morning or evening"
// @Success 200 {object} domain.CarryForward
// @Security BearerAuth
// @Router /shops/{shopID}/operations/opening [get]
func (h *operationHandler) getOpening(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dayStr, periodStr, ok := dayPeriodQuery(c)
	if !ok {
		return
	}
	day, _ := services.ParseDay(dayStr)

	carryForward, err := h.reconciliationService.ResolveOpening(c.Request.Context(), c.Param("shopID"), day, domain.Period(periodStr))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, carryForward)
}

// closeOperation godoc
// @Summary Close a register period
// @Description Validates the closing figures, converts local-currency entries with the day's rate, computes the grand total and persists one immutable record. A missing rate degrades to a cash-only total with an advisory instead of blocking.
// @Tags operations
// @Accept json
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param closing body dto.CloseOperationRequest true "Closing figures"
// @Success 201 {object} dto.CloseOperationResponse
// @Failure 400 {object} map[string]string "Validation error (e.g. missing evening closing figure)"
// @Failure 409 {object} map[string]string "Period already closed"
// @Failure 503 {object} map[string]string "Temporary storage failure; retry"
// @Security BearerAuth
// @Router /shops/{shopID}/operations/close [post]
func (h *operationHandler) closeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	op, advisories, err := h.reconciliationService.CloseOperation(c.Request.Context(), c.Param("shopID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "register_period_closed", map[string]any{
		"shop_id":     op.ShopID,
		"period":      string(op.Period),
		"grand_total": op.GrandTotal.String(),
	})

	c.JSON(http.StatusCreated, dto.CloseOperationResponse{
		Operation:  dto.ToOperationResponse(op),
		Advisories: advisories,
	})
}

// getOperation godoc
// @Summary Get one closing record
// @Tags operations
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param operationID path string true "Operation ID"
// @Success 200 {object} dto.OperationResponse
// @Failure 404 {object} map[string]string "Operation not found"
// @Security BearerAuth
// @Router /shops/{shopID}/operations/{operationID} [get]
func (h *operationHandler) getOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	op, err := h.reconciliationService.GetOperation(c.Request.Context(), c.Param("shopID"), c.Param("operationID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperationResponse(op))
}

// listOperations godoc
// @Summary List closing history
// @Tags operations
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param date query string false "Filter by calendar day (2006-01-02)"
// @Param period query string false "Filter by period"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.OperationResponse
// @Security BearerAuth
// @Router /shops/{shopID}/operations [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var day time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := services.ParseDay(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in 2006-01-02 form"})
			return
		}
		day = parsed
	}

	limit, offset := paginationParams(c)
	ops, err := h.reconciliationService.ListOperations(c.Request.Context(), c.Param("shopID"), day, domain.Period(c.Query("period")), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListOperationResponse(ops))
}
