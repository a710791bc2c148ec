package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mlevkov/authbox/internal/client/cli"
	"github.com/mlevkov/authbox/internal/client/config"
	"github.com/mlevkov/authbox/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
