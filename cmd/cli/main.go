package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/emilssudmalis1337/game-site-expo/internal/buildinfo"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/cli"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/config"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
