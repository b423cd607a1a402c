package services

import (
	"errors"
	"fmt"
	"time"

	"vyapar-testkit/pkg/datagen"
	"vyapar-testkit/pkg/models"
	"vyapar-testkit/pkg/testkit"

	"go.uber.org/zap"
)

// ErrInvalidHorizon is returned when a request asks for a horizon outside
// the supported 7-14 day window.
var ErrInvalidHorizon = errors.New("forecast horizon must be between 7 and 14 days")

// ErrInvalidDataMode is returned for data modes other than "structured" and
// "low-data".
var ErrInvalidDataMode = errors.New("data mode must be \"structured\" or \"low-data\"")

// StubForecastService builds contract-valid forecast and risk responses for
// frontend and integration testing. The values are randomized within the
// contract's bounds; they are stand-ins, not predictions.
type StubForecastService struct {
	gen    *datagen.Generator
	logger *zap.Logger
}

// NewStubForecastService creates a stub service. A nil generator falls back
// to a clock-seeded one, a nil logger to a no-op logger.
func NewStubForecastService(gen *datagen.Generator, logger *zap.Logger) *StubForecastService {
	if gen == nil {
		gen = datagen.NewRandom()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StubForecastService{gen: gen, logger: logger}
}

// BuildForecast returns a forecast result whose shape satisfies the backend
// contract: one prediction per horizon day with bounds bracketing the
// forecast, a confidence in [0,1] and a methodology matching the data mode.
func (s *StubForecastService) BuildForecast(req models.ForecastRequest) (*models.ForecastResult, error) {
	if !testkit.IsValidForecastHorizon(req.ForecastHorizon) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, req.ForecastHorizon)
	}

	var methodology string
	switch req.DataMode {
	case "low-data":
		methodology = "pattern"
	case "structured":
		methodology = "ml"
		if len(req.TargetFestivals) > 0 {
			methodology = "hybrid"
		}
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDataMode, req.DataMode)
	}

	baseDemand := s.gen.FloatBetween(50.0, 500.0)
	start := time.Now().AddDate(0, 0, 1)

	predictions := make([]models.Prediction, req.ForecastHorizon)
	for i := range predictions {
		demand := baseDemand * (1.0 + s.gen.FloatBetween(-0.2, 0.2))
		predictions[i] = models.Prediction{
			Date:           start.AddDate(0, 0, i).Format("2006-01-02"),
			DemandForecast: demand,
			LowerBound:     demand * 0.8,
			UpperBound:     demand * 1.2,
		}
	}

	result := &models.ForecastResult{
		SKU:         s.gen.SKU(),
		Category:    "grocery",
		Predictions: predictions,
		Confidence:  s.gen.FloatBetween(0.5, 0.95),
		Methodology: methodology,
	}

	s.logger.Info("built stub forecast",
		zap.String("user_id", req.UserID),
		zap.String("data_mode", req.DataMode),
		zap.String("methodology", methodology),
		zap.Int("horizon", req.ForecastHorizon),
	)
	return result, nil
}

// BuildRiskAssessment returns a risk assessment derived arithmetically from
// the stock position so that every contract invariant holds: probabilities
// in [0,1], a known action and a known urgency. Negative stock is treated
// as zero.
func (s *StubForecastService) BuildRiskAssessment(inv models.InventoryRecord) *models.RiskAssessment {
	if inv.CurrentStock < 0 {
		inv.CurrentStock = 0
	}
	leadTime := inv.LeadTimeDays
	if leadTime < 1 {
		leadTime = 1
	}
	dailyDraw := inv.ReorderPoint / leadTime
	if dailyDraw < 1 {
		dailyDraw = 1
	}
	daysUntilStockout := inv.CurrentStock / dailyDraw

	stockoutProb := clamp01(float64(inv.ReorderPoint) / float64(inv.CurrentStock+1))
	excess := inv.CurrentStock - inv.ReorderPoint*4
	if excess < 0 {
		excess = 0
	}
	overstockProb := clamp01(float64(excess) / float64(inv.CurrentStock+1))

	recommendation := models.Recommendation{
		Action:     "maintain",
		Urgency:    "low",
		Confidence: s.gen.FloatBetween(0.5, 0.95),
	}
	switch {
	case inv.CurrentStock < inv.ReorderPoint:
		recommendation.Action = "reorder"
		recommendation.SuggestedQuantity = inv.ReorderPoint*2 - inv.CurrentStock
		switch {
		case daysUntilStockout <= leadTime:
			recommendation.Urgency = "high"
		case daysUntilStockout <= 2*leadTime:
			recommendation.Urgency = "medium"
		}
	case excess > 0:
		recommendation.Action = "reduce"
		recommendation.SuggestedQuantity = excess
	}

	return &models.RiskAssessment{
		SKU:          inv.SKU,
		Category:     inv.Category,
		CurrentStock: inv.CurrentStock,
		StockoutRisk: models.StockoutRisk{
			Probability:        stockoutProb,
			DaysUntilStockout:  daysUntilStockout,
			PotentialLostSales: float64(dailyDraw * leadTime),
		},
		OverstockRisk: models.OverstockRisk{
			Probability:  overstockProb,
			ExcessUnits:  excess,
			CarryingCost: float64(excess) * 0.1,
		},
		Recommendation: recommendation,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
