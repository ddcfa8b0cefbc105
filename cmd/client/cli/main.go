package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/coursestore/internal/buildinfo"
	"github.com/dmitrijs2005/coursestore/internal/client/cli"
	"github.com/dmitrijs2005/coursestore/internal/client/config"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewDefault(cfg.Debug)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
