package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiWatch/internal/alert"
	"github.com/Egor213/LogiWatch/internal/broker"
	kafkabroker "github.com/Egor213/LogiWatch/internal/broker/kafka"
	"github.com/Egor213/LogiWatch/internal/config"
	httpv1 "github.com/Egor213/LogiWatch/internal/controller/http/v1"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/monitor"
	"github.com/Egor213/LogiWatch/internal/queue"
	"github.com/Egor213/LogiWatch/internal/repo"
	"github.com/Egor213/LogiWatch/internal/service"
	"github.com/Egor213/LogiWatch/pkg/breaker"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/Egor213/LogiWatch/pkg/grpcserver"
	"github.com/Egor213/LogiWatch/pkg/httpserver"
	"github.com/Egor213/LogiWatch/pkg/logger"
	"github.com/Egor213/LogiWatch/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	ctx := context.Background()

	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(ctx, cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.MaxPoolSize),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.MaxConnIdleTime(cfg.PG.MaxConnIdleTime),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Metrics
	counters := metrics.New()

	// Alert fan-out
	var sinks []alert.Sink
	if cfg.Kafka.Enabled {
		log.WithField("brokers", cfg.Kafka.Brokers).Info("Publishing alerts to Kafka")
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.AlertsTopic,
		})
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		sinks = append(sinks, broker.NewAlertPublisher(producer, cfg.App.Name))
	}

	// Services
	policy, err := queue.ParsePolicy(cfg.Ingest.OverflowPolicy)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	deps := service.ServicesDependencies{
		Repos:    repositories,
		Counters: counters,
		Breaker:  breaker.New("postgres"),
		Sinks:    sinks,
		Config:   sessionConfig(cfg, policy),
	}
	services := service.NewServices(deps)
	services.Restore(ctx)
	defer services.Close()

	// API server
	log.Infof("Starting API server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.Use(metrics.Middleware())
	httpv1.NewRouter(apiHandler, services, counters)
	apiServer := httpserver.New(apiHandler,
		httpserver.Host(cfg.HTTP.Host),
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Timeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
	)

	// gRPC health server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	grpcServer.SetServing(true)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	grpcServer.SetServing(false)
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}

func sessionConfig(cfg *config.Config, policy queue.Policy) service.SessionConfig {
	rules := domain.AlertRules{
		LoginFailureThreshold: cfg.Alerts.LoginFailureThreshold,
		FlagOffHours:          cfg.Alerts.OffHours,
		RestrictedURLs:        cfg.Alerts.RestrictedURLs,
	}
	return service.SessionConfig{
		DefaultPath:    cfg.Monitor.Path,
		DemoOnEmpty:    cfg.App.DemoOnEmpty,
		BufferCap:      cfg.Ingest.BufferCap,
		TickInterval:   cfg.Ingest.TickInterval,
		BatchSize:      cfg.Ingest.BatchSize,
		QueueCapacity:  cfg.Ingest.QueueCapacity,
		OverflowPolicy: policy,
		MaxFiles:       cfg.Ingest.MaxFiles,
		Monitor: monitor.Config{
			Extension:    cfg.Monitor.Extension,
			PollInterval: cfg.Monitor.PollInterval,
			ErrorBackoff: cfg.Monitor.ErrorBackoff,
			StopTimeout:  cfg.Monitor.StopTimeout,
			UseNotify:    cfg.Monitor.UseNotify,
		},
		Alerts: alert.Config{
			DedupWindow: cfg.Alerts.DedupWindow,
			MaxActive:   cfg.Alerts.MaxActive,
		},
		Rules: rules,
	}
}
