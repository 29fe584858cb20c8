package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/metrics"
	"github.com/nekruzvatanshoev/carval/pkg/carval/server"
	"github.com/nekruzvatanshoev/carval/pkg/carval/snapshot"
	"github.com/nekruzvatanshoev/carval/pkg/carval/tracing"
)

var serveAddr string

var (
	ServeCmd = &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		RunE:  serveCmdFunc(),
	}
)

func init() {
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides server.addr")
}

func serveCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = rt.log.Sync() }()
		cfg := rt.cfg
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		tp, err := tracing.Setup(ctx, cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(sctx); err != nil {
				rt.log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()

		m := metrics.New()
		opts := []server.Option{server.WithLogger(rt.log), server.WithMetrics(m)}

		if cfg.Redis.Enabled() {
			store, err := snapshot.Dial(ctx, cfg.Redis, rt.log)
			if err != nil {
				return err
			}
			defer store.Close()
			opts = append(opts, server.WithSnapshots(store))
			rt.log.Info("valuation snapshots enabled", zap.String("redis", cfg.Redis.Addr))
		}

		if cfg.Engine.WatchTables {
			if err := rt.tables.Watch(cfg.Engine.TablesFile, m.ObserveReload); err != nil {
				return err
			}
			rt.log.Info("watching reference tables", zap.String("file", cfg.Engine.TablesFile))
		}

		serve := server.NewHTTPServer(cfg.Server.Addr, rt.engine, opts...)
		serve.ReadTimeout = cfg.Server.ReadTimeout
		serve.WriteTimeout = cfg.Server.WriteTimeout

		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signalCh)

		errCh := make(chan error, 1)
		go func() {
			rt.log.Info("server listening", zap.String("addr", cfg.Server.Addr))
			if err := serve.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case sig := <-signalCh:
			rt.log.Info("shutting down the server", zap.String("signal", sig.String()))
		}

		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return serve.Shutdown(sctx)
	}
}
