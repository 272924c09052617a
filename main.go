package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-shipping/app/cmd"
	"github.com/Rakhulsr/go-shipping/app/configs"
	"github.com/Rakhulsr/go-shipping/app/handlers"
	"github.com/Rakhulsr/go-shipping/app/routes"
	"github.com/Rakhulsr/go-shipping/app/services"
	"github.com/Rakhulsr/go-shipping/app/utils/renderer"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shippingSvc := services.NewShippingService(logger)
	serve := func(ctx context.Context) error {
		return runServer(ctx, env, shippingSvc, logger)
	}

	if len(os.Args) > 1 {
		app := cmd.App{Service: shippingSvc, Serve: serve, Out: os.Stdout}
		if err := cmd.RunCli(ctx, app, os.Args); err != nil {
			logger.Fatalf("Command failed: %v", err)
		}
		return
	}

	if err := serve(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}

func runServer(ctx context.Context, env configs.ENV, shippingSvc *services.ShippingService, logger *zap.SugaredLogger) error {
	shippingHandler := handlers.NewShippingHandler(renderer.New(env.TemplateDir, !env.IsProduction()), shippingSvc, logger)
	router := routes.NewRouter(shippingHandler, logger)

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on %s (%s)", server.Addr, env.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
