// Package datagen generates randomized, constraint-satisfying domain records
// for property-style tests and seed datasets.
package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"vyapar-testkit/pkg/models"
)

// Value pools mirroring the questionnaire and profile enumerations.
var (
	businessTypes       = []string{"grocery", "apparel", "electronics", "general"}
	storeSizes          = []string{"small", "medium", "large"}
	regions             = []string{"north", "south", "east", "west", "central"}
	riskTolerances      = []string{"conservative", "moderate", "aggressive"}
	dataQualities       = []string{"poor", "fair", "good"}
	salesCategories     = []string{"grocery", "apparel", "electronics", "home", "beauty"}
	inventoryCategories = []string{"grocery", "apparel", "electronics"}
	confidenceLevels    = []string{"low", "medium", "high"}
	festivalNames       = []string{"Diwali", "Eid", "Holi", "Christmas", "Pongal", "Onam", "Durga Puja"}
	majorFestivals      = []string{"Diwali", "Eid", "Holi", "Christmas"}
	dataModes           = []string{"structured", "low-data"}
)

const (
	skuAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	userIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	dateLayout     = "2006-01-02"
)

// Generator produces random domain records from a seeded source, so a failing
// example can be replayed from its seed.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a Generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// NewRandom creates a Generator seeded from the current time.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

func (g *Generator) IntBetween(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) FloatBetween(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func (g *Generator) Pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

// PickUnique returns between min and max distinct values from the pool.
func (g *Generator) PickUnique(values []string, min, max int) []string {
	n := g.IntBetween(min, max)
	if n > len(values) {
		n = len(values)
	}
	idx := g.rng.Perm(len(values))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

func (g *Generator) text(alphabet string, minLen, maxLen int) string {
	n := g.IntBetween(minLen, maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(b)
}

// SKU generates a 5-10 character uppercase alphanumeric SKU.
func (g *Generator) SKU() string {
	return g.text(skuAlphabet, 5, 10)
}

// UserID generates an identifier of the form "user-<8-12 lowercase alnum>".
func (g *Generator) UserID() string {
	return "user-" + g.text(userIDAlphabet, 8, 12)
}

// SalesRecord generates a valid sales record: a date within the last two
// years, a positive quantity and a bounded price.
func (g *Generator) SalesRecord() models.SalesRecord {
	daysAgo := g.IntBetween(0, 730)
	return models.SalesRecord{
		Date:     g.now.AddDate(0, 0, -daysAgo).Format(dateLayout),
		SKU:      g.SKU(),
		Quantity: g.IntBetween(1, 1000),
		Category: g.Pick(salesCategories),
		Price:    g.FloatBetween(1.0, 10000.0),
	}
}

// SalesRecords generates between min and max valid sales records.
func (g *Generator) SalesRecords(min, max int) []models.SalesRecord {
	n := g.IntBetween(min, max)
	records := make([]models.SalesRecord, n)
	for i := range records {
		records[i] = g.SalesRecord()
	}
	return records
}

// InvalidSalesRecord generates a record map that always violates at least one
// sales record constraint. The remaining fields stay valid so validators are
// exercised on partially well-formed input.
func (g *Generator) InvalidSalesRecord() map[string]interface{} {
	record := map[string]interface{}{
		"date":     g.now.Format(dateLayout),
		"sku":      g.SKU(),
		"quantity": g.IntBetween(1, 1000),
	}

	switch g.rng.Intn(7) {
	case 0:
		delete(record, "date")
	case 1:
		record["date"] = "invalid-date"
	case 2:
		record["date"] = nil
	case 3:
		delete(record, "sku")
	case 4:
		record["sku"] = nil
	case 5:
		delete(record, "quantity")
	case 6:
		record["quantity"] = g.IntBetween(-1000, 0)
	}
	return record
}

// FestivalEvent generates a festival within the next year. Every demand
// multiplier stays inside [1.0, 5.0] and the region set is never empty.
func (g *Generator) FestivalEvent() models.FestivalEvent {
	daysAhead := g.IntBetween(1, 365)
	date := g.now.AddDate(0, 0, daysAhead)
	name := g.Pick(festivalNames)

	multipliers := make(map[string]float64, len(inventoryCategories))
	for _, category := range inventoryCategories {
		multipliers[category] = g.FloatBetween(1.0, 5.0)
	}

	return models.FestivalEvent{
		FestivalID:        fmt.Sprintf("%s-%d", toFestivalSlug(name), date.Year()),
		Name:              name,
		Date:              date.Format(dateLayout),
		Region:            g.PickUnique(regions, 1, 3),
		Category:          "festival",
		DemandMultipliers: multipliers,
		Duration:          g.IntBetween(1, 10),
		PreparationDays:   g.IntBetween(7, 30),
	}
}

// UserProfile generates a profile with a forecast horizon inside [7, 14].
func (g *Generator) UserProfile() models.UserProfile {
	return models.UserProfile{
		UserID: g.UserID(),
		BusinessInfo: models.BusinessInfo{
			Name: "Store " + g.text(skuAlphabet, 4, 8),
			Type: g.Pick(businessTypes),
			Location: models.Location{
				City:   "City " + g.text(skuAlphabet, 2, 4),
				State:  "State " + g.text(skuAlphabet, 2, 4),
				Region: g.Pick(regions),
			},
			Size: g.Pick(storeSizes),
		},
		DataCapabilities: models.DataCapabilities{
			HasHistoricalData: g.rng.Intn(2) == 0,
			DataQuality:       g.Pick(dataQualities),
			LastUpdated:       g.now.Format(time.RFC3339),
		},
		Preferences: models.Preferences{
			ForecastHorizon: g.IntBetween(7, 14),
			RiskTolerance:   g.Pick(riskTolerances),
		},
	}
}

// QuestionnaireResponse generates a low-data mode questionnaire answer with
// 1-5 inventory positions and at least one target festival.
func (g *Generator) QuestionnaireResponse() models.QuestionnaireResponse {
	inventory := make([]models.InventoryPosition, g.IntBetween(1, 5))
	for i := range inventory {
		inventory[i] = models.InventoryPosition{
			Category:          g.Pick(inventoryCategories),
			CurrentStock:      g.IntBetween(0, 10000),
			AverageDailySales: g.IntBetween(1, 500),
			Confidence:        g.Pick(confidenceLevels),
		}
	}

	stockouts := make([]string, g.IntBetween(0, 5))
	for i := range stockouts {
		stockouts[i] = g.SKU()
	}

	return models.QuestionnaireResponse{
		UserID:       g.UserID(),
		BusinessType: g.Pick(businessTypes),
		StoreSize:    g.Pick(storeSizes),
		LastFestivalPerformance: models.FestivalPerformance{
			Festival:      g.Pick(majorFestivals),
			SalesIncrease: g.FloatBetween(0.0, 500.0),
			TopCategories: g.PickUnique(inventoryCategories, 1, 3),
			StockoutItems: stockouts,
		},
		CurrentInventory: inventory,
		TargetFestivals:  g.PickUnique(majorFestivals, 1, 3),
	}
}

// ForecastRequest generates a request with a horizon inside [7, 14] and a
// confidence inside [0, 1].
func (g *Generator) ForecastRequest() models.ForecastRequest {
	festivals := make([]string, g.IntBetween(0, 3))
	for i := range festivals {
		festivals[i] = g.Pick(festivalNames)
	}

	return models.ForecastRequest{
		UserID:          g.UserID(),
		ForecastHorizon: g.IntBetween(7, 14),
		TargetFestivals: festivals,
		DataMode:        g.Pick(dataModes),
		Confidence:      g.FloatBetween(0.0, 1.0),
	}
}

// InventoryRecord generates a stock position for risk assessment input.
func (g *Generator) InventoryRecord() models.InventoryRecord {
	return models.InventoryRecord{
		SKU:          g.SKU(),
		Category:     g.Pick(inventoryCategories),
		CurrentStock: g.IntBetween(0, 10000),
		ReorderPoint: g.IntBetween(10, 500),
		LeadTimeDays: g.IntBetween(1, 30),
	}
}

// toFestivalSlug lowercases a festival name and joins words with hyphens,
// e.g. "Durga Puja" -> "durga-puja".
func toFestivalSlug(name string) string {
	b := []byte(name)
	for i := range b {
		switch {
		case b[i] >= 'A' && b[i] <= 'Z':
			b[i] += 'a' - 'A'
		case b[i] == ' ':
			b[i] = '-'
		}
	}
	return string(b)
}
