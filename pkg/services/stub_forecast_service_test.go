package services

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"vyapar-testkit/pkg/datagen"
	"vyapar-testkit/pkg/models"
	"vyapar-testkit/pkg/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *StubForecastService {
	return NewStubForecastService(datagen.New(42), nil)
}

func TestBuildForecast(t *testing.T) {
	svc := newTestService()

	result, err := svc.BuildForecast(models.ForecastRequest{
		UserID:          "test-user-123",
		ForecastHorizon: 7,
		DataMode:        "structured",
	})
	require.NoError(t, err)

	assert.Len(t, result.Predictions, 7)
	assert.Equal(t, "ml", result.Methodology)
	assert.True(t, testkit.IsValidConfidence(result.Confidence))

	for _, p := range result.Predictions {
		assert.True(t, testkit.IsValidDateString(p.Date), "date %q", p.Date)
		assert.LessOrEqual(t, p.LowerBound, p.DemandForecast)
		assert.LessOrEqual(t, p.DemandForecast, p.UpperBound)
		assert.Greater(t, p.DemandForecast, 0.0)
	}
}

func TestBuildForecastMethodology(t *testing.T) {
	testCases := []struct {
		name     string
		request  models.ForecastRequest
		expected string
	}{
		{
			name:     "low data uses pattern matching",
			request:  models.ForecastRequest{ForecastHorizon: 7, DataMode: "low-data"},
			expected: "pattern",
		},
		{
			name:     "structured uses ml",
			request:  models.ForecastRequest{ForecastHorizon: 14, DataMode: "structured"},
			expected: "ml",
		},
		{
			name: "structured with festivals uses hybrid",
			request: models.ForecastRequest{
				ForecastHorizon: 14,
				DataMode:        "structured",
				TargetFestivals: []string{"diwali-2023"},
			},
			expected: "hybrid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := newTestService().BuildForecast(tc.request)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Methodology)
			assert.Len(t, result.Predictions, tc.request.ForecastHorizon)
		})
	}
}

func TestBuildForecastInvalidHorizon(t *testing.T) {
	svc := newTestService()

	for _, horizon := range []int{0, 6, 15, -1} {
		_, err := svc.BuildForecast(models.ForecastRequest{
			ForecastHorizon: horizon,
			DataMode:        "structured",
		})
		assert.True(t, errors.Is(err, ErrInvalidHorizon), "horizon %d", horizon)
	}
}

func TestBuildForecastInvalidDataMode(t *testing.T) {
	_, err := newTestService().BuildForecast(models.ForecastRequest{
		ForecastHorizon: 7,
		DataMode:        "freeform",
	})
	assert.True(t, errors.Is(err, ErrInvalidDataMode))
}

func TestBuildForecastSatisfiesContract(t *testing.T) {
	result, err := newTestService().BuildForecast(models.ForecastRequest{
		ForecastHorizon: 10,
		DataMode:        "structured",
		TargetFestivals: []string{"diwali-2023"},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))

	testkit.AssertForecastResultValid(t, asMap)
}

func TestBuildRiskAssessmentReorder(t *testing.T) {
	svc := newTestService()

	risk := svc.BuildRiskAssessment(models.InventoryRecord{
		SKU:          "SKU001",
		Category:     "grocery",
		CurrentStock: 50,
		ReorderPoint: 100,
		LeadTimeDays: 5,
	})

	assert.Equal(t, "reorder", risk.Recommendation.Action)
	assert.Equal(t, 150, risk.Recommendation.SuggestedQuantity)
	// 50 stock / 20 per day = 2.5 days, within the 5 day lead time
	assert.Equal(t, "high", risk.Recommendation.Urgency)
	assert.Equal(t, 2, risk.StockoutRisk.DaysUntilStockout)
}

func TestBuildRiskAssessmentReduce(t *testing.T) {
	risk := newTestService().BuildRiskAssessment(models.InventoryRecord{
		SKU:          "SKU002",
		Category:     "electronics",
		CurrentStock: 1000,
		ReorderPoint: 100,
		LeadTimeDays: 5,
	})

	assert.Equal(t, "reduce", risk.Recommendation.Action)
	assert.Equal(t, 600, risk.Recommendation.SuggestedQuantity)
	assert.Equal(t, "low", risk.Recommendation.Urgency)
	assert.Equal(t, 600, risk.OverstockRisk.ExcessUnits)
	assert.InDelta(t, 60.0, risk.OverstockRisk.CarryingCost, 1e-9)
}

func TestBuildRiskAssessmentMaintain(t *testing.T) {
	risk := newTestService().BuildRiskAssessment(models.InventoryRecord{
		SKU:          "SKU003",
		Category:     "grocery",
		CurrentStock: 200,
		ReorderPoint: 100,
		LeadTimeDays: 5,
	})

	assert.Equal(t, "maintain", risk.Recommendation.Action)
	assert.Equal(t, 0, risk.Recommendation.SuggestedQuantity)
}

func TestBuildRiskAssessmentZeroStock(t *testing.T) {
	risk := newTestService().BuildRiskAssessment(models.InventoryRecord{
		SKU:          "SKU004",
		Category:     "grocery",
		CurrentStock: 0,
		ReorderPoint: 100,
		LeadTimeDays: 1,
	})

	assert.Equal(t, "reorder", risk.Recommendation.Action)
	assert.Equal(t, "high", risk.Recommendation.Urgency)
	assert.True(t, testkit.IsValidConfidence(risk.StockoutRisk.Probability))
	assert.True(t, testkit.IsValidConfidence(risk.OverstockRisk.Probability))
}

func TestBuildRiskAssessmentNegativeStock(t *testing.T) {
	risk := newTestService().BuildRiskAssessment(models.InventoryRecord{
		SKU:          "SKU005",
		Category:     "grocery",
		CurrentStock: -1,
		ReorderPoint: 100,
		LeadTimeDays: 5,
	})

	assert.Equal(t, 0, risk.CurrentStock)
	assert.False(t, math.IsNaN(risk.StockoutRisk.Probability))
	assert.False(t, math.IsNaN(risk.OverstockRisk.Probability))

	raw, err := json.Marshal(risk)
	require.NoError(t, err)
	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))
	testkit.AssertRiskAssessmentValid(t, asMap)
}

func TestBuildRiskAssessmentSatisfiesContract(t *testing.T) {
	gen := datagen.New(7)
	svc := NewStubForecastService(gen, nil)

	for i := 0; i < 25; i++ {
		risk := svc.BuildRiskAssessment(gen.InventoryRecord())

		raw, err := json.Marshal(risk)
		require.NoError(t, err)
		var asMap map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &asMap))

		testkit.AssertRiskAssessmentValid(t, asMap)
	}
}
