package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/KirkDiggler/opr-tts-api/internal/handlers/lists/v1"
)

var port int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server that converts, saves and serves army lists.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := buildDeps(true)
	if err != nil {
		return err
	}
	defer d.Close()

	if port != 0 {
		d.cfg.Server.Port = port
	}

	if err := d.redis.Ping(ctx).Err(); err != nil {
		d.logger.Warn("redis not reachable, saving lists will fail until it is", zap.Error(err))
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		ArmyListService: d.service,
		Logger:          d.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create lists handler: %w", err)
	}

	routerCfg := v1.RouterConfig{Handler: handler, Logger: d.logger}
	if d.cfg.Observability.MetricsEnabled {
		routerCfg.Metrics = d.metrics
		routerCfg.Gatherer = d.registry
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", d.cfg.Server.Port),
		Handler:      v1.NewRouter(routerCfg),
		ReadTimeout:  d.cfg.Server.ReadTimeout,
		WriteTimeout: d.cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		d.logger.Info("http server starting", zap.Int("port", d.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		d.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), d.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			d.logger.Warn("graceful shutdown timeout exceeded, forcing stop", zap.Error(err))
			return srv.Close()
		}
		d.logger.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
