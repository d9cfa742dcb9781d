package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/infrastructure/lock"
	"github.com/vfg2006/guia-local-api/infrastructure/migration"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/api"
	"github.com/vfg2006/guia-local-api/internal/api/handler"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/scheduler"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/highlighting"
	"github.com/vfg2006/guia-local-api/internal/usecases/ranking"
	"github.com/vfg2006/guia-local-api/pkg/log"
	"github.com/vfg2006/guia-local-api/pkg/metrics"
)

const expirationLockName = "highlight-expiration"

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migrations.AutoRun {
		if err := migration.Up(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
		logrus.Info("Migrations aplicadas com sucesso")
	}

	healthChecks := map[string]handler.Pinger{
		"postgres": pgConn.Ping,
	}

	// Sem Redis o job roda sem coordenação entre réplicas
	var runLock lock.Lock
	if cfg.Redis.Enabled {
		redisClient, err := lock.NewClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		defer redisClient.Close()

		redisLock, err := lock.NewRedisLock(redisClient, expirationLockName, cfg.HighlightExpiration.LockTTL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar lock de expiração")
		}
		runLock = redisLock
		healthChecks["redis"] = redisClient.Ping
		logrus.Info("Conexão com Redis estabelecida com sucesso")
	}

	highlightRepo := repository.NewHighlightRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	settingsRepo := repository.WithSettingsCache(repository.NewSettingsRepository(pgConn), cfg.Settings.CacheTTL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	sweepMetrics := metrics.NewSweepMetrics(registry)

	authenticator := authenticating.NewService(cfg)
	rankingService := ranking.NewBusinessRankingService(businessRepo, highlightRepo)
	highlightService := highlighting.NewService(highlightRepo, businessRepo, settingsRepo)

	expirationService := scheduler.NewHighlightExpirationService(
		highlightRepo,
		settingsRepo,
		runLock,
		sweepMetrics,
		cfg,
	)

	if err := expirationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de expiração de destaques")
	} else {
		logrus.Info("Agendador de expiração de destaques iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		RankingService:   rankingService,
		HighlightService: highlightService,
		Authenticator:    authenticator,
		Sweeper:          expirationService,
		HealthChecks:     healthChecks,
		MetricsHandler:   metrics.Handler(registry),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
