package handlers

import (
	"errors"
	"net/http"

	"vyapar-testkit/pkg/models"
	"vyapar-testkit/pkg/services"

	"github.com/gin-gonic/gin"
)

// StubHandler serves contract-valid stub forecast and risk responses.
type StubHandler struct {
	stubService *services.StubForecastService
}

// NewStubHandler creates a StubHandler.
func NewStubHandler(stubService *services.StubForecastService) *StubHandler {
	return &StubHandler{stubService: stubService}
}

// GetStubForecastService returns the handler's stub service.
func (sh *StubHandler) GetStubForecastService() *services.StubForecastService {
	return sh.stubService
}

// StubForecast builds a contract-valid forecast result for the requested
// horizon and data mode. Missing fields fall back to a 7-day structured
// request.
func (sh *StubHandler) StubForecast(c *gin.Context) {
	var request models.ForecastRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse request: " + err.Error(),
		})
		return
	}

	if request.ForecastHorizon == 0 {
		request.ForecastHorizon = 7
	}
	if request.DataMode == "" {
		request.DataMode = "structured"
	}

	forecast, err := sh.stubService.BuildForecast(request)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidHorizon) || errors.Is(err, services.ErrInvalidDataMode) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": "failed to build stub forecast: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    forecast,
	})
}

// StubRisk builds a contract-valid risk assessment for the posted stock
// position.
func (sh *StubHandler) StubRisk(c *gin.Context) {
	var record models.InventoryRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse request: " + err.Error(),
		})
		return
	}
	if record.SKU == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "sku is required",
		})
		return
	}
	if record.CurrentStock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "currentStock must not be negative",
		})
		return
	}

	risk := sh.stubService.BuildRiskAssessment(record)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    risk,
	})
}
