package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	forecastRequiredFields   = []string{"sku", "category", "predictions", "confidence", "methodology"}
	predictionRequiredFields = []string{"date", "demandForecast", "lowerBound", "upperBound"}
	riskRequiredFields       = []string{"sku", "category", "currentStock", "stockoutRisk", "overstockRisk", "recommendation"}

	validMethodologies = []string{"ml", "pattern", "hybrid"}
	validActions       = []string{"reorder", "reduce", "maintain"}
	validUrgencies     = []string{"low", "medium", "high"}
)

// AssertAPIResponse checks the API Gateway response envelope: the expected
// status code, a parseable JSON body and the presence of the expected body
// keys. It returns the parsed body for further checks.
func AssertAPIResponse(t testing.TB, resp APIGatewayResponse, expectedStatus int, expectedBodyKeys []string) map[string]interface{} {
	t.Helper()

	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")
	require.NotEmpty(t, resp.Body, "response body is empty")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body), "response body is not valid JSON")

	for _, key := range expectedBodyKeys {
		require.Contains(t, body, key, "expected key %q not found in response body", key)
	}
	return body
}

// AssertForecastResultValid checks a forecast result against the backend
// contract: required fields, a valid confidence, a known methodology and a
// non-empty prediction list whose bounds bracket each forecast.
func AssertForecastResultValid(t testing.TB, forecast map[string]interface{}) {
	t.Helper()

	require.True(t, HasRequiredFields(forecast, forecastRequiredFields),
		"forecast is missing required fields %v", forecastRequiredFields)
	require.True(t, IsValidConfidence(asFloat(t, forecast["confidence"])),
		"forecast confidence %v out of [0,1]", forecast["confidence"])
	require.Contains(t, validMethodologies, forecast["methodology"])

	predictions, ok := forecast["predictions"].([]interface{})
	require.True(t, ok, "predictions is not a list")
	require.NotEmpty(t, predictions, "predictions is empty")

	for i, raw := range predictions {
		prediction, ok := raw.(map[string]interface{})
		require.True(t, ok, "prediction %d is not an object", i)
		require.True(t, HasRequiredFields(prediction, predictionRequiredFields),
			"prediction %d is missing required fields %v", i, predictionRequiredFields)

		date, _ := prediction["date"].(string)
		require.True(t, IsValidDateString(date), "prediction %d has invalid date %q", i, date)

		demand := asFloat(t, prediction["demandForecast"])
		lower := asFloat(t, prediction["lowerBound"])
		upper := asFloat(t, prediction["upperBound"])
		require.GreaterOrEqual(t, demand, 0.0, "prediction %d demand is negative", i)
		require.LessOrEqual(t, lower, demand, "prediction %d lower bound above forecast", i)
		require.GreaterOrEqual(t, upper, demand, "prediction %d upper bound below forecast", i)
	}
}

// AssertRiskAssessmentValid checks a risk assessment against the backend
// contract: required fields, probabilities inside [0,1] and recommendation
// enums.
func AssertRiskAssessmentValid(t testing.TB, risk map[string]interface{}) {
	t.Helper()

	require.True(t, HasRequiredFields(risk, riskRequiredFields),
		"risk assessment is missing required fields %v", riskRequiredFields)

	stockout := asObject(t, risk["stockoutRisk"], "stockoutRisk")
	require.True(t, HasRequiredFields(stockout, []string{"probability", "daysUntilStockout", "potentialLostSales"}))
	require.True(t, IsValidConfidence(asFloat(t, stockout["probability"])),
		"stockout probability %v out of [0,1]", stockout["probability"])

	overstock := asObject(t, risk["overstockRisk"], "overstockRisk")
	require.True(t, HasRequiredFields(overstock, []string{"probability", "excessUnits", "carryingCost"}))
	require.True(t, IsValidConfidence(asFloat(t, overstock["probability"])),
		"overstock probability %v out of [0,1]", overstock["probability"])

	recommendation := asObject(t, risk["recommendation"], "recommendation")
	require.True(t, HasRequiredFields(recommendation, []string{"action", "suggestedQuantity", "urgency", "confidence"}))
	require.Contains(t, validActions, recommendation["action"])
	require.Contains(t, validUrgencies, recommendation["urgency"])
	require.True(t, IsValidConfidence(asFloat(t, recommendation["confidence"])),
		"recommendation confidence %v out of [0,1]", recommendation["confidence"])
}

func asObject(t testing.TB, v interface{}, name string) map[string]interface{} {
	t.Helper()
	obj, ok := v.(map[string]interface{})
	require.True(t, ok, "%s is not an object", name)
	return obj
}

func asFloat(t testing.TB, v interface{}) float64 {
	t.Helper()
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		require.NoError(t, err, "cannot parse numeric value %q", val)
		return f
	default:
		t.Fatalf("value %v (%T) is not numeric", v, v)
		return 0
	}
}
