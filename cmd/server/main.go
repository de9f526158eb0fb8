package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"kiosqueLive/internal/config"
	"kiosqueLive/internal/modules/pages"
	handler "kiosqueLive/internal/modules/storefront/application/handler"
	usecase "kiosqueLive/internal/modules/storefront/application/usecase"
	"kiosqueLive/internal/modules/storefront/infrastructure"
	transport "kiosqueLive/internal/modules/storefront/interface"
	"kiosqueLive/internal/platform/broker"
	"kiosqueLive/internal/shared/auth"
	"kiosqueLive/internal/shared/logging"
)

func main() {
	// Load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}

	configPath := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("backend config resolved", slog.String("baseUrl", cfg.REST.BaseURL), slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID))

	renderer := pages.NewRenderer()
	hub := infrastructure.NewHub()
	registry := infrastructure.NewHandlerRegistry()
	sessions := usecase.NewSessionRegistry()

	backend := infrastructure.NewStorefrontHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout(), nil)
	broadcastUC := usecase.NewBroadcastUseCase(hub)
	relayUC := usecase.NewContactRelayUseCase(backend, broadcastUC)

	deps := usecase.SessionDeps{
		Catalog:  backend,
		Presence: backend,
		Relay:    relayUC,
		Renderer: renderer,
	}

	for _, topic := range cfg.Kafka.Topics {
		switch {
		case strings.Contains(topic, "location"):
			registry.Register(handler.NewLocationEventHandler(topic, backend, sessions))
		case strings.Contains(topic, "schedule"):
			registry.Register(handler.NewScheduleEventHandler(topic, backend, sessions))
		default:
			registry.Register(handler.NewCatalogEventHandler(topic, backend, sessions))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)

	e.GET("/ws/storefront", transport.NewStorefrontWebsocketHandler(hub, sessions, deps))
	e.GET("/ws/notifications", transport.NewNotificationsWebsocketHandler(hub, validator))
	e.POST("/api/contact", transport.NewContactHandler(relayUC))
	e.GET("/healthz", transport.NewHealthHandler(sessions))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
