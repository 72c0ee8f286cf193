// Package main is the entry point for the search service
package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/soedr/google-flights-api/pkg/backup"
	"github.com/soedr/google-flights-api/pkg/kafka"
	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/postgres"
	"github.com/soedr/google-flights-api/pkg/qpx"
	"github.com/soedr/google-flights-api/pkg/redis"
	"github.com/soedr/google-flights-api/services/search-service/config"
	httpDelivery "github.com/soedr/google-flights-api/services/search-service/delivery/http"
	"github.com/soedr/google-flights-api/services/search-service/usecase"
)

func main() {
	bootLogger := logger.NewJSONDefault()

	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		bootLogger.Error("Invalid log level", "level", cfg.Logging.Level, "error", err)
		os.Exit(1)
	}
	appLogger := logger.NewWithOptions(
		logger.WithLevel(level),
		logger.WithFormat(cfg.Logging.Format),
	).With("service", cfg.Application.Name)

	location := time.Local
	if cfg.QPX.Location != "" {
		location, err = time.LoadLocation(cfg.QPX.Location)
		if err != nil {
			appLogger.Error("Invalid qpx location", "location", cfg.QPX.Location, "error", err)
			os.Exit(1)
		}
	}

	sinks, closers, err := buildSinks(cfg.Backup, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize backup sinks", "error", err)
		closeSinks(closers, appLogger)
		os.Exit(1)
	}

	clientOpts := []qpx.Option{
		qpx.WithBaseURL(cfg.QPX.BaseURL),
		qpx.WithTimeout(time.Duration(cfg.QPX.Timeout) * time.Second),
		qpx.WithLocation(location),
		qpx.WithLogger(appLogger),
		qpx.WithBackup(cfg.Backup.Dir),
	}
	for _, sink := range sinks {
		clientOpts = append(clientOpts, qpx.WithBackupSink(sink))
	}

	qpxClient, err := qpx.NewClient(cfg.QPX.APIKey, clientOpts...)
	if err != nil {
		appLogger.Error("Failed to initialize qpx client", "error", err)
		closeSinks(closers, appLogger)
		os.Exit(1)
	}

	searchUseCase := usecase.NewSearchUseCase(qpxClient, appLogger)

	searchHandler := httpDelivery.NewSearchHandler(searchUseCase, cfg.Server.MaxBodyBytes, appLogger)
	healthHandler := httpDelivery.NewHealthHandler(cfg.Application.Version, appLogger)

	router := httpDelivery.NewRouter(searchHandler, healthHandler, appLogger)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Service starting",
			"version", cfg.Application.Version,
			"port", cfg.Server.Port,
			"backup", qpxClient.BackupEnabled(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			closeSinks(closers, appLogger)
			os.Exit(1)
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	closeSinks(closers, appLogger)

	appLogger.Info("Server exited")
}

// buildSinks connects every enabled backup store beyond the file directory.
// On error the clients opened so far are still returned so they can be closed.
func buildSinks(cfg config.BackupConfig, appLogger logger.LoggerInterface) ([]backup.Sink, []io.Closer, error) {
	var (
		sinks   []backup.Sink
		closers []io.Closer
	)

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewWithConfig(cfg.Redis.Config)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, redisClient)
		sinks = append(sinks, backup.NewRedisSink(redisClient, cfg.Redis.Prefix, time.Duration(cfg.Redis.TTL)*time.Hour, appLogger))
	}

	if cfg.Kafka.Enabled {
		kafkaClient, err := kafka.NewWithConfig(cfg.Kafka.Config)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, kafkaClient)
		sinks = append(sinks, backup.NewKafkaSink(kafkaClient, cfg.Kafka.Topic, appLogger))
	}

	if cfg.Postgres.Enabled {
		postgresClient, err := postgres.NewPostgresClient(cfg.Postgres.Config)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, postgresClient)

		sink := backup.NewPostgresSink(postgresClient, appLogger)
		if cfg.Postgres.IsUseMigrate {
			if err := sink.Migrate(); err != nil {
				return nil, closers, err
			}
		}
		sinks = append(sinks, sink)
	}

	return sinks, closers, nil
}

// closeSinks closes every backup client, logging failures
func closeSinks(closers []io.Closer, appLogger logger.LoggerInterface) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			appLogger.Warn("Error closing backup sink", "error", err)
		}
	}
}
