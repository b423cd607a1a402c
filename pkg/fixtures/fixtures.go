// Package fixtures provides static sample records shared across tests.
package fixtures

import (
	"vyapar-testkit/pkg/models"
)

// SampleSalesData returns the canonical three-record sales history used by
// import and validation tests.
func SampleSalesData() []models.SalesRecord {
	return []models.SalesRecord{
		{Date: "2023-10-01", SKU: "SKU001", Quantity: 10},
		{Date: "2023-10-02", SKU: "SKU001", Quantity: 15},
		{Date: "2023-10-03", SKU: "SKU002", Quantity: 8},
	}
}

// SampleFestival returns the Diwali 2023 event with known multipliers.
func SampleFestival() models.FestivalEvent {
	return models.FestivalEvent{
		FestivalID: "diwali-2023",
		Name:       "Diwali",
		Date:       "2023-11-12",
		Region:     []string{"north", "west"},
		Category:   "festival",
		DemandMultipliers: map[string]float64{
			"grocery":     2.5,
			"apparel":     3.0,
			"electronics": 2.0,
		},
		Duration:        5,
		PreparationDays: 14,
	}
}

// SampleUserProfile returns a medium-sized Mumbai grocery store profile.
func SampleUserProfile() models.UserProfile {
	return models.UserProfile{
		UserID: "test-user-123",
		BusinessInfo: models.BusinessInfo{
			Name: "Test Store",
			Type: "grocery",
			Location: models.Location{
				City:   "Mumbai",
				State:  "Maharashtra",
				Region: "west",
			},
			Size: "medium",
		},
		DataCapabilities: models.DataCapabilities{
			HasHistoricalData: true,
			DataQuality:       "good",
			LastUpdated:       "2023-10-01T00:00:00Z",
		},
		Preferences: models.Preferences{
			ForecastHorizon: 14,
			RiskTolerance:   "moderate",
		},
	}
}
