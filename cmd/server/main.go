package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/buildinfo"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server"
	"github.com/dmitrijs2005/gophdocs/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, "json", os.Stdout)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
