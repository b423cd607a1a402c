package models

// SalesRecord represents a single historical sales record.
// This is the row shape used for importing sales history (CSV/XLSX).
type SalesRecord struct {
	Date     string  `json:"date"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// FestivalEvent represents a calendar event that lifts baseline demand.
type FestivalEvent struct {
	FestivalID        string             `json:"festivalId"`
	Name              string             `json:"name"`
	Date              string             `json:"date"`
	Region            []string           `json:"region"`
	Category          string             `json:"category"`
	DemandMultipliers map[string]float64 `json:"demandMultipliers"`
	Duration          int                `json:"duration"`
	PreparationDays   int                `json:"preparationDays"`
}

// Location is the physical location of a business.
type Location struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Region string `json:"region"`
}

// BusinessInfo describes the registered business of a user.
type BusinessInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Location Location `json:"location"`
	Size     string   `json:"size"`
}

// DataCapabilities describes how much usable history a user has.
type DataCapabilities struct {
	HasHistoricalData bool   `json:"hasHistoricalData"`
	DataQuality       string `json:"dataQuality"`
	LastUpdated       string `json:"lastUpdated"`
}

// Preferences holds per-user forecasting preferences.
// ForecastHorizon is in days and must stay within [7, 14].
type Preferences struct {
	ForecastHorizon int    `json:"forecastHorizon"`
	RiskTolerance   string `json:"riskTolerance"`
}

// UserProfile represents a registered user and their business.
type UserProfile struct {
	UserID           string           `json:"userId"`
	BusinessInfo     BusinessInfo     `json:"businessInfo"`
	DataCapabilities DataCapabilities `json:"dataCapabilities"`
	Preferences      Preferences      `json:"preferences"`
}

// FestivalPerformance captures how a past festival went for the business.
type FestivalPerformance struct {
	Festival      string   `json:"festival"`
	SalesIncrease float64  `json:"salesIncrease"`
	TopCategories []string `json:"topCategories"`
	StockoutItems []string `json:"stockoutItems"`
}

// InventoryPosition is one category line of the current inventory answer.
type InventoryPosition struct {
	Category          string `json:"category"`
	CurrentStock      int    `json:"currentStock"`
	AverageDailySales int    `json:"averageDailySales"`
	Confidence        string `json:"confidence"`
}

// QuestionnaireResponse is the low-data mode input: forecasting driven by a
// questionnaire instead of historical sales records.
type QuestionnaireResponse struct {
	UserID                  string              `json:"userId"`
	BusinessType            string              `json:"businessType"`
	StoreSize               string              `json:"storeSize"`
	LastFestivalPerformance FestivalPerformance `json:"lastFestivalPerformance"`
	CurrentInventory        []InventoryPosition `json:"currentInventory"`
	TargetFestivals         []string            `json:"targetFestivals"`
}

// ForecastRequest represents a demand forecast request.
type ForecastRequest struct {
	UserID          string   `json:"userId"`
	ForecastHorizon int      `json:"forecastHorizon"`
	TargetFestivals []string `json:"targetFestivals"`
	DataMode        string   `json:"dataMode"`
	Confidence      float64  `json:"confidence"`
}

// InventoryRecord is the stock position of a single SKU, used as input for
// risk assessment.
type InventoryRecord struct {
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	CurrentStock int    `json:"currentStock"`
	ReorderPoint int    `json:"reorderPoint"`
	LeadTimeDays int    `json:"leadTimeDays"`
}

// Prediction is a single day of a forecast result. The bounds always bracket
// the forecast: LowerBound <= DemandForecast <= UpperBound.
type Prediction struct {
	Date           string  `json:"date"`
	DemandForecast float64 `json:"demandForecast"`
	LowerBound     float64 `json:"lowerBound"`
	UpperBound     float64 `json:"upperBound"`
}

// ForecastResult is the forecast response contract of the backend.
// Methodology is one of "ml", "pattern" or "hybrid".
type ForecastResult struct {
	SKU         string       `json:"sku"`
	Category    string       `json:"category"`
	Predictions []Prediction `json:"predictions"`
	Confidence  float64      `json:"confidence"`
	Methodology string       `json:"methodology"`
}

// StockoutRisk quantifies the chance of running out of stock.
type StockoutRisk struct {
	Probability        float64 `json:"probability"`
	DaysUntilStockout  int     `json:"daysUntilStockout"`
	PotentialLostSales float64 `json:"potentialLostSales"`
}

// OverstockRisk quantifies the cost of holding excess stock.
type OverstockRisk struct {
	Probability  float64 `json:"probability"`
	ExcessUnits  int     `json:"excessUnits"`
	CarryingCost float64 `json:"carryingCost"`
}

// Recommendation is the suggested inventory action. Action is one of
// "reorder", "reduce" or "maintain"; Urgency one of "low", "medium", "high".
type Recommendation struct {
	Action            string  `json:"action"`
	SuggestedQuantity int     `json:"suggestedQuantity"`
	Urgency           string  `json:"urgency"`
	Confidence        float64 `json:"confidence"`
}

// RiskAssessment is the risk response contract of the backend.
type RiskAssessment struct {
	SKU            string         `json:"sku"`
	Category       string         `json:"category"`
	CurrentStock   int            `json:"currentStock"`
	StockoutRisk   StockoutRisk   `json:"stockoutRisk"`
	OverstockRisk  OverstockRisk  `json:"overstockRisk"`
	Recommendation Recommendation `json:"recommendation"`
}
