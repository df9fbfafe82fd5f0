package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"api_timeshare/api"
	"api_timeshare/internal/config"
	"api_timeshare/internal/economics"
	"api_timeshare/internal/sales"
	"api_timeshare/internal/volume"
)

func main() {
	// Missing .env is fine: everything has a default.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("SCHEDULES_PATH"))
	if err != nil {
		logger.Fatal("failed to load schedule policy", zap.Error(err))
	}

	var volumes sales.VolumeSource
	if trackerURL := os.Getenv("VOLUME_SERVICE_URL"); trackerURL != "" {
		client := volume.NewClient(trackerURL, logger)
		defer client.Close()
		volumes = client
	}

	r := gin.Default()
	api.InitRoutes(r, api.Options{
		Calculator: economics.NewCalculator(cfg),
		Volumes:    volumes,
		Logger:     logger,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	if err := r.Run(":" + port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
