package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mindcare/internal/app"
	"mindcare/internal/config"
	"mindcare/internal/transport/rest"
	"mindcare/internal/transport/ws"
)

// @title MindCare API
// @version 1.0
// @description Student mental health screening, counselor bot and counselling workflow
// @host localhost:8080
// @BasePath /v1
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "mindcare-server",
		Short:         "Run the MindCare HTTP and WebSocket API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := serve(cmd.Context(), configPath)
			if err != nil {
				log.WithError(err).Error("server stopped")
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (defaults to .env in . or ./config)")
	return cmd
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	app.SetupLogging(cfg.Log)

	a, err := app.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	hub := ws.NewHub()
	defer hub.Close()
	log.Info("WebSocket hub started")

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: rest.NewRouter(a.Container(hub)),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
