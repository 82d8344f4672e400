package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"household-calc/internal/api"
	"household-calc/internal/config"
	"household-calc/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config (optional)")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error", zap.String("op", "main"), zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	tables, err := data.LoadTables(cfg.TaxTable, cfg.BudgetTable)
	if err != nil {
		return err
	}
	logger.Info("loaded reference tables",
		zap.String("op", "main.run"),
		zap.String("tax_table", cfg.TaxTable),
		zap.String("budget_table", cfg.BudgetTable),
		zap.Int("flat_states", len(tables.Tax.FlatRates)),
		zap.Int("progressive_states", len(tables.Tax.Progressive)),
		zap.Int("budget_categories", len(tables.Budget.Categories)),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           api.NewRouter(tables, cfg.StaticDir, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting API server", zap.String("op", "main.run"), zap.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.Address, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.String("op", "main.run"), zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
