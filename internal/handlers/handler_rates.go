package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fxtracker/currency_rates_app/internal/apperrors"
	portssvc "github.com/fxtracker/currency_rates_app/internal/core/ports/services"
	"github.com/fxtracker/currency_rates_app/internal/dto"
	"github.com/fxtracker/currency_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// rateHandler handles HTTP requests related to currency rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to currency rates. The update
// endpoint is the only mutation and the only rate-limited route.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, updateLimiter *limiter.Limiter) {
	h := newRateHandler(rateService)

	rg.GET("/currency-rates", h.listCurrencyRates)
	rg.GET("/currency-history/:code", h.getCurrencyHistory)
	rg.POST("/update-rate", middleware.RateLimit(updateLimiter), h.updateCurrencyRate)
}

// listCurrencyRates godoc
// @Summary List all current rates
// @Description Retrieves the current exchange rate of every tracked currency
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /currency-rates [get]
func (h *rateHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currency rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// getCurrencyHistory godoc
// @Summary Get rate history for a currency
// @Description Retrieves up to 10 archived rate snapshots, most recent first. Unknown codes yield an empty list.
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {array} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Router /currency-history/{code} [get]
func (h *rateHandler) getCurrencyHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	logger = logger.With(slog.String("currency_code", currencyCode))

	history, err := h.rateService.GetRateHistory(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid currency code for history", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get rate history from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateHistoryResponse(history))
}

// updateCurrencyRate godoc
// @Summary Update a currency rate
// @Description Archives the prior rate into history and replaces the current value, computing the change percentage. Creates the currency when unseen.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   update body dto.UpdateRateRequest true "Rate update"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Router /update-rate [post]
func (h *rateHandler) updateCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		middleware.RateUpdatesTotal.WithLabelValues("unknown", "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The metric label always carries the stored (lower-case) form so mixed-case
	// input cannot split one currency across label values.
	metricCode := strings.ToLower(strings.TrimSpace(req.CurrencyCode))

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to update rate", slog.String("rate", req.Rate.String()))

	updated, err := h.rateService.UpdateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating rate", slog.String("error", err.Error()))
			middleware.RateUpdatesTotal.WithLabelValues(metricCode, "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Conflict exhaustion and storage failures both surface as server errors.
		logger.Error("Failed to update rate in service", slog.String("error", err.Error()))
		middleware.RateUpdatesTotal.WithLabelValues(metricCode, "failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currency rate"})
		return
	}

	logger.Info("Rate updated successfully",
		slog.String("currency_code", updated.CurrencyCode),
		slog.String("change_percentage", updated.ChangePercentage.String()),
	)
	middleware.RateUpdatesTotal.WithLabelValues(updated.CurrencyCode, "ok").Inc()
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(updated))
}
