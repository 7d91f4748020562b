package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Bandhan203/Practicum-RMS-sub000/config"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := application.Run(ctx); err != nil {
		application.Logger.Errorf(ctx, "gateway exited with error: %v", err)
	}
}
