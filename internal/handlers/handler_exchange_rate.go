package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(ers)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/:currencyCode", h.listExchangeRates)
		exchangeRates.GET("/:currencyCode/rate", h.getRateForDate)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a rate from a currency to the base currency, effective from a date
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Rate already exists for currency and date"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listExchangeRates godoc
// @Summary List exchange rates for a currency
// @Tags exchange rates
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates/{currencyCode} [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currencyCode")

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), currencyCode)
	if err != nil {
		respondServiceError(c, logger, err, "list exchange rates")
		return
	}

	responses := make([]dto.ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = dto.ToExchangeRateResponse(&rates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getRateForDate godoc
// @Summary Get the rate effective on a date
// @Description Retrieves the most recent rate effective on or before the given date
// @Tags exchange rates
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   date query string false "Date (RFC 3339 or YYYY-MM-DD); defaults to today"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 404 {object} map[string]string "No rate found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{currencyCode}/rate [get]
func (h *exchangeRateHandler) getRateForDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currencyCode")

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339 or YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	rate, err := h.exchangeRateService.GetRateForDate(c.Request.Context(), currencyCode, date)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
