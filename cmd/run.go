package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jekabolt/merchant-report/app"
	"github.com/jekabolt/merchant-report/config"
	"github.com/jekabolt/merchant-report/internal/store"
	"github.com/jekabolt/merchant-report/log"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(os.Stdout, cfg.Logger))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.Default()

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		a.Stop(ctx)
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}

	return nil
}

func once(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := app.New(cfg).RunOnce(ctx)
	if err != nil {
		return fmt.Errorf("report run failed: %w", err)
	}

	attrs := []any{
		slog.Time("run_date", res.RunDate),
		slog.Int("merchants", res.Merchants),
		slog.Bool("no_data", res.NoData),
	}
	for _, a := range res.Artifacts {
		attrs = append(attrs, slog.String("artifact", a.Location()))
	}
	slog.Default().InfoContext(ctx, "report run finished", attrs...)

	for _, d := range res.Deliveries {
		if d.Err != nil {
			return fmt.Errorf("delivery over %s failed: %w", d.Channel, d.Err)
		}
	}
	return nil
}

func migrateDB(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.DB.Automigrate = true
	ps, err := store.New(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("cannot migrate database: %w", err)
	}
	ps.Close()
	return nil
}
