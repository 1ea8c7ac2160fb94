package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/buildinfo"
	"github.com/dmitrijs2005/gophdocs/internal/client/cli"
	"github.com/dmitrijs2005/gophdocs/internal/client/config"
	"github.com/dmitrijs2005/gophdocs/internal/filex"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := filex.EnsureParentDir(cfg.LogFile); err != nil {
			log.Fatalf("%v", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(cfg.LogLevel, "text", logOut)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
