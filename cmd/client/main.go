package main

import (
	"fmt"

	"github.com/MKhiriev/go-artist-guesser/internal/adapter"
	"github.com/MKhiriev/go-artist-guesser/internal/client"
	"github.com/MKhiriev/go-artist-guesser/internal/config"
	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/service"
	"github.com/MKhiriev/go-artist-guesser/internal/tui"
	"github.com/MKhiriev/go-artist-guesser/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(models.AppName, "", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(models.AppName, cfg.Log.Level, cfg.Log.File)

	gameAdapter, err := adapter.NewHTTPGameAdapter(cfg.Adapter, cfg.App, buildInfo.UserAgent(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create game adapter")
	}

	services := service.NewClientServices(gameAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
