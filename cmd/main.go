package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"robot-rental-admin/internal/cache"
	"robot-rental-admin/internal/config"
	"robot-rental-admin/internal/database"
	"robot-rental-admin/internal/ingestion"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/routes"
	"robot-rental-admin/internal/tasks"
	pkgmqtt "robot-rental-admin/pkg/mqtt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application", zap.String("environment", env))

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// The cache is optional: without redis the dashboard recomputes on
	// every request.
	redisCache, err := cache.NewCache(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, dashboard caching disabled", zap.Error(err))
		redisCache = nil
	} else {
		defer func() {
			if err := redisCache.Close(); err != nil {
				logger.Error("Failed to close redis connection", zap.Error(err))
			}
		}()
	}

	services := routes.BuildServices(cfg, db, redisCache)
	router := routes.SetupRoutes(cfg, db, redisCache, services)

	if cfg.MQTT.Enabled {
		processor := ingestion.NewProcessor(services.Devices)
		mqttClient, err := ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
			ClientConfig: &pkgmqtt.Config{
				Broker:               cfg.MQTT.Broker,
				ClientID:             cfg.MQTT.ClientID,
				Username:             cfg.MQTT.Username,
				Password:             cfg.MQTT.Password,
				CleanSession:         true,
				KeepAlive:            30,
				ConnectTimeout:       10,
				AutoReconnect:        true,
				MaxReconnectInterval: time.Minute,
			},
			TelemetryTopic: cfg.MQTT.Topic,
			QoS:            1,
		}, processor)
		if err != nil {
			logger.Fatal("Failed to build MQTT ingestion client", zap.Error(err))
		}
		if err := mqttClient.Start(); err != nil {
			logger.Error("Telemetry ingestion unavailable", zap.Error(err))
		} else {
			defer mqttClient.Stop()
		}
	}

	housekeeping := tasks.NewRunner(cfg.Housekeeping,
		services.Rentals,
		services.Orders,
		tasks.StatsFunc(func(ctx context.Context) error {
			_, err := services.Stats.Refresh(ctx)
			return err
		}),
	)
	housekeeping.Start()
	defer housekeeping.Stop()

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	logger.Info("Server exited properly")
}
