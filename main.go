package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/locvowork/employee_service/internal/bootstrap"
	"github.com/locvowork/employee_service/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		app.Close()
		os.Exit(1)
	}

	go func() {
		if err := app.Run(); err != nil {
			logger.ErrorLog(ctx, "Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.InfoLog(context.Background(), "Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLog(shutdownCtx, "Graceful shutdown failed: %v", err)
	}
}
