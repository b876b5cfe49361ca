package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrunoMartendal/webhook-pix2/config"
	"github.com/BrunoMartendal/webhook-pix2/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logrus.Errorf("Error reading config: %v", err)
		os.Exit(1)
	}
	cfg.APP.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	if err := myApp.Initialize(ctx, cfg); err != nil {
		logrus.Errorf("Error initializing app: %v", err)
		os.Exit(1)
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Errorf("Server stopped with error: %v", err)
		os.Exit(1)
	}
}
