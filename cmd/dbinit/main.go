package main

import (
	"context"
	"log"
	"os"

	"github.com/sainaif/animalsys/internal/bootstrap"
	"github.com/sainaif/animalsys/internal/flagx"
	"github.com/sainaif/animalsys/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig(flagx.ConfigFileFlag(os.Args[1:]))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*cfg.Timeout)
	defer cancel()

	cli, err := bootstrap.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := cli.Disconnect(context.Background()); err != nil {
			logger.Warn(ctx, "mongo disconnect", "error", err)
		}
	}()

	store := bootstrap.NewMongoStore(cli.Database(cfg.Database))
	rep, err := bootstrap.New(store, logger).Run(ctx, cfg.AppUser, cfg.AppPassword)
	if err != nil {
		return err
	}

	logger.Info(ctx, "bootstrap complete",
		"database", store.DatabaseName(),
		"created_collections", len(rep.CreatedCollections),
		"indexes", len(rep.Indexes),
		"user_created", rep.UserCreated,
	)
	return nil
}
