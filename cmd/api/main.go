package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Haleralex/peoplehub/internal/config"
	"github.com/Haleralex/peoplehub/internal/container"
)

func main() {
	var (
		configPath string
		configName string
	)

	flag.StringVar(&configPath, "config-path", "configs", "Directory holding the config file")
	flag.StringVar(&configName, "config-name", "config", "Config file name without extension")
	flag.Parse()

	// .env is optional; real env vars win either way
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(configPath, configName)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	c := container.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := c.Initialize(ctx); err != nil {
		cancel()
		log.Fatalf("failed to initialize application: %v", err)
	}
	cancel()

	if err := c.Run(); err != nil {
		c.Logger().Error("Server error", slog.String("error", err.Error()))
		shutdown(c)
		os.Exit(1)
	}

	shutdown(c)
	c.Logger().Info("Server stopped gracefully")
}

func shutdown(c *container.Container) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Shutdown(ctx); err != nil {
		c.Logger().Error("Shutdown error", slog.String("error", err.Error()))
	}
}
