// @title CareerPath Backend API
// @version 1.0
// @description Backend for the career guidance platform: quiz-driven career
// @description assessment, skill gap analysis, and learning roadmaps.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"careerpath_backend/internal/app"
	"careerpath_backend/internal/config"
	"careerpath_backend/pkg/configwatcher"
	"careerpath_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	watch := flag.Bool("watch-config", false, "reload config on file change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configPath+"/config.yaml", func(newCfg *config.Config) {
			logger.Log.Info("Config reloaded")
			for _, cb := range application.ConfigCallbacks() {
				cb(newCfg)
			}
		})
	}

	application.Run()
}
