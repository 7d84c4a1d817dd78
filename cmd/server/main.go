package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/neobank/backoffice/config"
	"github.com/neobank/backoffice/infra"
	inframepo "github.com/neobank/backoffice/infra/repository"
	accountsvc "github.com/neobank/backoffice/pkg/service/account"
	clientsvc "github.com/neobank/backoffice/pkg/service/client"
	txsvc "github.com/neobank/backoffice/pkg/service/transaction"
	"github.com/neobank/backoffice/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	uow := inframepo.NewUoW(db)
	app := webapi.NewApp(webapi.Services{
		Client:      clientsvc.New(uow, logger),
		Account:     accountsvc.New(uow, logger),
		Transaction: txsvc.New(uow, logger),
	}, cfg)

	logger.Info("starting server", "env", cfg.Env, "host", cfg.Host, "port", cfg.Port)
	return app.Listen(cfg.Address())
}
