package main

import (
	"context"
	"log"
	"os"

	"github.com/sainaif/animalsys/internal/client/cli"
	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/config"
	"github.com/sainaif/animalsys/internal/client/services"
	"github.com/sainaif/animalsys/internal/client/session"
	"github.com/sainaif/animalsys/internal/client/uploads"
	"github.com/sainaif/animalsys/internal/logging"
	"github.com/sainaif/animalsys/internal/metrics"
	"github.com/sainaif/animalsys/internal/netx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := session.NewPersistentStore(ctx, db, cfg.SessionSecret)
	if err != nil {
		return err
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := netx.ListenAndServe(ctx, cfg.MetricsAddr, m.Handler()); err != nil {
				logger.Error(ctx, "metrics listener stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	var app *cli.App
	c := client.New(cfg.APIBaseURL, store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithAuthFailureStatus(cfg.AuthFailureStatus),
		client.WithNavigator(client.NavigatorFunc(func() { app.RedirectToLogin() })),
		client.WithLogger(logger),
		client.WithMetrics(m),
	)

	animals := services.NewAnimalService(c)

	deps := cli.Deps{
		Store:      store,
		Auth:       services.NewAuthService(c, store),
		Animals:    animals,
		Adoptions:  services.NewAdoptionService(c),
		Donors:     services.NewDonorService(c),
		Volunteers: services.NewVolunteerService(c),
		Inventory:  services.NewInventoryService(c),
		Veterinary: services.NewVeterinaryService(c),
		Logger:     logger,
	}

	if cfg.S3.Bucket != "" {
		up, err := uploads.New(ctx, cfg.S3.Uploads(), animals)
		if err != nil {
			return err
		}
		deps.Uploader = up
	}

	logger.Debug(ctx, "starting shell", "api", c.BaseURL(), "session_db", cfg.SessionDBPath)

	app = cli.NewApp(deps)
	app.Run(ctx)
	return nil
}
