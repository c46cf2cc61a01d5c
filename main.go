package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/CorrelAid/newsletter_subscription/config"
	"github.com/CorrelAid/newsletter_subscription/router"
	"github.com/CorrelAid/newsletter_subscription/server"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.LogFormat))
	gin.SetMode(cfg.GinMode)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		slog.Error("failed to bind port", "port", cfg.Port, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, ln, router.New(cfg), cfg.ShutdownTimeout); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
