package handlers

import (
	"net/http"

	"vyapar-testkit/pkg/datagen"
	"vyapar-testkit/pkg/fixtures"

	"github.com/gin-gonic/gin"
)

// FixtureHandler serves static fixtures and randomized generated records.
type FixtureHandler struct {
	gen *datagen.Generator
}

// NewFixtureHandler creates a FixtureHandler backed by the given generator.
func NewFixtureHandler(gen *datagen.Generator) *FixtureHandler {
	if gen == nil {
		gen = datagen.NewRandom()
	}
	return &FixtureHandler{gen: gen}
}

// GetSampleSales returns the canonical sales fixture.
func (fh *FixtureHandler) GetSampleSales(c *gin.Context) {
	records := fixtures.SampleSalesData()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// GetSampleFestival returns the Diwali 2023 festival fixture.
func (fh *FixtureHandler) GetSampleFestival(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fixtures.SampleFestival(),
	})
}

// GetSampleProfile returns the Mumbai grocery store profile fixture.
func (fh *FixtureHandler) GetSampleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fixtures.SampleUserProfile(),
	})
}

// GenerateSales returns randomized sales records. Query parameters:
// count (default 10, max 1000) and seed for replayable output.
func (fh *FixtureHandler) GenerateSales(c *gin.Context) {
	count := queryInt(c, "count", 10, 1, 1000)
	gen := fh.generatorFor(c)

	records := gen.SalesRecords(count, count)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// GenerateFestivals returns randomized festival events.
func (fh *FixtureHandler) GenerateFestivals(c *gin.Context) {
	count := queryInt(c, "count", 5, 1, 100)
	gen := fh.generatorFor(c)

	events := make([]interface{}, count)
	for i := range events {
		events[i] = gen.FestivalEvent()
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"count":   count,
	})
}

// GenerateProfiles returns randomized user profiles.
func (fh *FixtureHandler) GenerateProfiles(c *gin.Context) {
	count := queryInt(c, "count", 5, 1, 100)
	gen := fh.generatorFor(c)

	profiles := make([]interface{}, count)
	for i := range profiles {
		profiles[i] = gen.UserProfile()
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profiles,
		"count":   count,
	})
}

// GenerateQuestionnaires returns randomized low-data questionnaire responses.
func (fh *FixtureHandler) GenerateQuestionnaires(c *gin.Context) {
	count := queryInt(c, "count", 5, 1, 100)
	gen := fh.generatorFor(c)

	responses := make([]interface{}, count)
	for i := range responses {
		responses[i] = gen.QuestionnaireResponse()
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   count,
	})
}

// generatorFor returns a seeded generator when the request carries a seed
// query parameter, otherwise the handler's shared generator.
func (fh *FixtureHandler) generatorFor(c *gin.Context) *datagen.Generator {
	if seed, ok := queryInt64(c, "seed"); ok {
		return datagen.New(seed)
	}
	return fh.gen
}
