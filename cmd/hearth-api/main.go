package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hearth-app/hearth/internal/config"
	"github.com/hearth-app/hearth/internal/logger"
	"github.com/hearth-app/hearth/internal/router"
	"github.com/hearth-app/hearth/internal/setup"
)

func main() {
	// Missing .env is fine, deployments pass real env vars.
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("setting up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Close()

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.Port)
	logger.Log.Info("server started", "addr", addr, "storage", cfg.Public.Storage, "auth_mode", cfg.Public.AuthMode)

	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
