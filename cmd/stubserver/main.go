package main

import (
	"log"
	"net/http"

	config "vyapar-testkit/configs"
	"vyapar-testkit/pkg/datagen"
	"vyapar-testkit/pkg/handlers"
	"vyapar-testkit/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	gen := datagen.NewRandom()
	if cfg.GeneratorSeed != 0 {
		gen = datagen.New(cfg.GeneratorSeed)
	}

	requestLogService := services.NewRequestLogService(logger)
	stubService := services.NewStubForecastService(gen, logger)

	fixtureHandler := handlers.NewFixtureHandler(gen)
	stubHandler := handlers.NewStubHandler(stubService)
	monitoringHandler := handlers.NewMonitoringHandler(requestLogService)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(requestLogService.LoggingMiddleware())
	r.Use(cors.Default())

	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" {
				c.Next()
				return
			}
			if c.GetHeader("X-API-KEY") != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		fixturesGroup := v1.Group("/fixtures")
		{
			fixturesGroup.GET("/sales", fixtureHandler.GetSampleSales)
			fixturesGroup.GET("/festivals", fixtureHandler.GetSampleFestival)
			fixturesGroup.GET("/profile", fixtureHandler.GetSampleProfile)
		}

		generate := v1.Group("/generate")
		{
			generate.GET("/sales", fixtureHandler.GenerateSales)
			generate.GET("/festivals", fixtureHandler.GenerateFestivals)
			generate.GET("/profiles", fixtureHandler.GenerateProfiles)
			generate.GET("/questionnaires", fixtureHandler.GenerateQuestionnaires)
		}

		stub := v1.Group("/stub")
		{
			stub.POST("/forecast", stubHandler.StubForecast)
			stub.POST("/risk", stubHandler.StubRisk)
		}

		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}
	}

	logger.Info("starting vyapar-testkit stub server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newLogger builds a production logger outside development.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
