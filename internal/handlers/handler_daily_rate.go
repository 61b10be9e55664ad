package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/core/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
)

// dailyRateHandler handles HTTP requests related to the daily exchange rate.
type dailyRateHandler struct {
	rateService portssvc.DailyRateSvcFacade
}

func newDailyRateHandler(rs portssvc.DailyRateSvcFacade) *dailyRateHandler {
	return &dailyRateHandler{rateService: rs}
}

// registerDailyRateRoutes registers routes related to daily rates.
func registerDailyRateRoutes(rg *gin.RouterGroup, rateService portssvc.DailyRateSvcFacade) {
	h := newDailyRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", middleware.RequireAdmin(), h.createRate)
		rates.GET("", h.listRates)
		rates.GET("/latest", h.getLatestRate)
		rates.GET("/date/:date", h.getRateByDate)
		rates.PUT("/:rateID", middleware.RequireAdmin(), h.updateRate)
	}
}

// createRate godoc
// @Summary Register the day's exchange rate
// @Description Registers the CDF-per-USD rate for one calendar day; at most one rate may exist per day
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateDailyRateRequest true "Rate details"
// @Success 201 {object} dto.DailyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "A rate already exists for the day"
// @Security BearerAuth
// @Router /rates [post]
func (h *dailyRateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDailyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailyRateResponse(rate))
}

// updateRate godoc
// @Summary Correct an existing rate
// @Description Corrects an existing day's rate in place; the audit trail records the correcting operator
// @Tags rates
// @Accept json
// @Produce json
// @Param rateID path string true "Rate ID"
// @Param rate body dto.UpdateDailyRateRequest true "Corrected value"
// @Success 200 {object} dto.DailyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /rates/{rateID} [put]
func (h *dailyRateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDailyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), c.Param("rateID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRateResponse(rate))
}

// getRateByDate godoc
// @Summary Get the rate for an exact date
// @Tags rates
// @Produce json
// @Param date path string true "Calendar day (2006-01-02)"
// @Success 200 {object} dto.DailyRateResponse
// @Failure 404 {object} map[string]string "No rate for that day"
// @Security BearerAuth
// @Router /rates/date/{date} [get]
func (h *dailyRateHandler) getRateByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	day, err := services.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in 2006-01-02 form"})
		return
	}

	rate, err := h.rateService.GetRateByDate(c.Request.Context(), day)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRateResponse(rate))
}

// getLatestRate godoc
// @Summary Get the most recent rate on or before a date
// @Description Fallback lookup for days without their own rate; the response flags staleness
// @Tags rates
// @Produce json
// @Param onOrBefore query string false "Calendar day (2006-01-02); defaults to today"
// @Success 200 {object} dto.LatestRateResponse
// @Failure 404 {object} map[string]string "No rate on or before that day"
// @Security BearerAuth
// @Router /rates/latest [get]
func (h *dailyRateHandler) getLatestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dayParam := c.Query("onOrBefore")
	var day = services.NormalizeDay(time.Now())
	if dayParam != "" {
		parsed, err := services.ParseDay(dayParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "onOrBefore must be in 2006-01-02 form"})
			return
		}
		day = parsed
	}

	rate, err := h.rateService.GetLatestRateOnOrBefore(c.Request.Context(), day)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LatestRateResponse{
		DailyRateResponse: dto.ToDailyRateResponse(rate),
		RequestedDate:     day.Format("2006-01-02"),
		Stale:             rate.RateDate.Before(day),
	})
}

// listRates godoc
// @Summary List rate history
// @Tags rates
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.DailyRateResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *dailyRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := paginationParams(c)
	rates, err := h.rateService.ListRates(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDailyRateResponse(rates))
}

// paginationParams reads limit/offset query parameters with defaults.
func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
