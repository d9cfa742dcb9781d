package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/api/handler"
	"github.com/vfg2006/guia-local-api/internal/api/handler/router"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/highlighting"
	"github.com/vfg2006/guia-local-api/internal/usecases/ranking"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	RankingService   ranking.RankingService
	HighlightService highlighting.HighlightService
	Authenticator    authenticating.Authenticator
	Sweeper          handler.HighlightSweeper
	HealthChecks     map[string]handler.Pinger
	MetricsHandler   http.Handler
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	h, err := NewHandler(cfg, deps)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, deps Dependencies) (http.Handler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clock := handler.NewClock(loc)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.HealthChecks)...),
		router.WithRoutes(handler.Metrics(deps.MetricsHandler)...),
		router.WithRoutes(handler.Businesses(deps.RankingService, deps.HighlightService, clock)...),
		router.WithRoutes(handler.Highlights(deps.HighlightService, clock)...),
		router.WithRoutes(handler.HighlightSettings(deps.HighlightService)...),
		router.WithRoutes(handler.CronJobs(deps.Sweeper, loc)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator, handler.PublicRoutes()...),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
