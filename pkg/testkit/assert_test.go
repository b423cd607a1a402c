package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForecastMap() map[string]interface{} {
	return map[string]interface{}{
		"sku":      "SKU001",
		"category": "grocery",
		"predictions": []interface{}{
			map[string]interface{}{
				"date":           "2023-10-01",
				"demandForecast": 120.0,
				"lowerBound":     96.0,
				"upperBound":     144.0,
			},
			map[string]interface{}{
				"date":           "2023-10-02",
				"demandForecast": 130.0,
				"lowerBound":     104.0,
				"upperBound":     156.0,
			},
		},
		"confidence":  0.85,
		"methodology": "hybrid",
	}
}

func validRiskMap() map[string]interface{} {
	return map[string]interface{}{
		"sku":          "SKU001",
		"category":     "grocery",
		"currentStock": 150,
		"stockoutRisk": map[string]interface{}{
			"probability":        0.7,
			"daysUntilStockout":  5,
			"potentialLostSales": 320.0,
		},
		"overstockRisk": map[string]interface{}{
			"probability":  0.1,
			"excessUnits":  0,
			"carryingCost": 0.0,
		},
		"recommendation": map[string]interface{}{
			"action":            "reorder",
			"suggestedQuantity": 250,
			"urgency":           "high",
			"confidence":        0.8,
		},
	}
}

func TestAssertForecastResultValid(t *testing.T) {
	AssertForecastResultValid(t, validForecastMap())
}

func TestAssertForecastResultValidBoundaryConfidence(t *testing.T) {
	forecast := validForecastMap()

	forecast["confidence"] = 0.0
	AssertForecastResultValid(t, forecast)

	forecast["confidence"] = 1.0
	AssertForecastResultValid(t, forecast)
}

func TestAssertRiskAssessmentValid(t *testing.T) {
	AssertRiskAssessmentValid(t, validRiskMap())
}

func TestAssertAPIResponse(t *testing.T) {
	payload := map[string]interface{}{
		"success": true,
		"data":    validForecastMap(),
	}
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)

	resp := APIGatewayResponse{
		StatusCode: 200,
		Body:       string(raw),
	}

	body := AssertAPIResponse(t, resp, 200, []string{"success", "data"})
	assert.Equal(t, true, body["success"])

	forecast, ok := body["data"].(map[string]interface{})
	assert.True(t, ok)
	AssertForecastResultValid(t, forecast)
}
