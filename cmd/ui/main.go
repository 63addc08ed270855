package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"pulseboard/adapters/excel"
	"pulseboard/adapters/synthetic"
	"pulseboard/app"
	"pulseboard/internal"
	"pulseboard/internal/config"
	"pulseboard/ports"
	"pulseboard/ui"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := internal.NewLoggerFromEnv()

	// The base table is generated once and read-only for the process
	// lifetime. Generation failure is terminal: no dataset, no server.
	var source ports.SampleSourcePort = synthetic.New(synthetic.Config{Rows: cfg.Data.Rows, Seed: cfg.Data.Seed})
	table, err := source.Generate(context.Background())
	if err != nil {
		log.Fatal("Failed to generate sample dataset: ", err)
	}
	logger.Info("generated dataset %s with %d respondents", table.ID(), table.Len())

	svc := app.NewDashboardService(table, logger)
	api := ui.NewApp(svc, excel.NewExporter(), logger)

	log.Printf("Starting pulseboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(api.Start(cfg.Server.Port))
}
