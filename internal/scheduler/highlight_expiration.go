// Package scheduler contém os jobs agendados do serviço
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/lock"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/metrics"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

const (
	skipReasonLock     = "lock"
	skipReasonDisabled = "disabled"
	skipReasonRunning  = "in_progress"
)

type HighlightExpirationConfig struct {
	CronSchedule string
	Enabled      bool
	Bulk         bool
}

// HighlightExpirationService expira os destaques ativos cujo período terminou
type HighlightExpirationService struct {
	scheduler           *gocron.Scheduler
	highlightRepo       repository.HighlightRepository
	settingsRepo        repository.SettingsRepository
	lock                lock.Lock
	metrics             *metrics.SweepMetrics
	config              HighlightExpirationConfig
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SweepResult
	lastError           string
}

// NewHighlightExpirationService cria o serviço. runLock pode ser nil quando
// só existe uma réplica.
func NewHighlightExpirationService(
	highlightRepo repository.HighlightRepository,
	settingsRepo repository.SettingsRepository,
	runLock lock.Lock,
	sweepMetrics *metrics.SweepMetrics,
	cfg *config.Config,
) *HighlightExpirationService {
	expirationConfig := HighlightExpirationConfig{
		CronSchedule: cfg.HighlightExpiration.CronSchedule, // Default: 00h05 todos os dias
		Enabled:      cfg.HighlightExpiration.Enabled,
		Bulk:         cfg.HighlightExpiration.Bulk,
	}

	location, err := cfg.Location()
	if err != nil {
		logrus.WithError(err).Warn("Fuso inválido, usando o horário local")
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": expirationConfig.CronSchedule,
		"enabled":       expirationConfig.Enabled,
		"bulk":          expirationConfig.Bulk,
		"timezone":      location.String(),
		"with_lock":     runLock != nil,
	}).Info("Configuração do agendador de expiração de destaques carregada")

	return &HighlightExpirationService{
		scheduler:     gocron.NewScheduler(location),
		highlightRepo: highlightRepo,
		settingsRepo:  settingsRepo,
		lock:          runLock,
		metrics:       sweepMetrics,
		config:        expirationConfig,
		location:      location,
		now:           time.Now,
	}
}

func (s *HighlightExpirationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de expiração de destaques desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de expiração de destaques")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunScheduled(ctx); err != nil {
			logrus.WithError(err).Error("Erro na expiração agendada de destaques")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expiração de destaques: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de expiração de destaques")
		s.scheduler.Stop()
	}()

	return nil
}

// Today é o dia corrente no fuso configurado
func (s *HighlightExpirationService) Today() domain.Date {
	return domain.DateOf(utils.StartOfDay(s.now(), s.location))
}

// RunScheduled é a execução disparada pelo cron. Respeita a configuração
// auto_expire_enabled das settings.
func (s *HighlightExpirationService) RunScheduled(ctx context.Context) (*domain.SweepResult, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível ler as configurações de destaque, seguindo com a expiração")
	} else if !settings.AutoExpireEnabled {
		logrus.Info("Expiração automática desabilitada nas configurações de destaque")
		s.metrics.IncSkipped(skipReasonDisabled)
		return nil, nil
	}

	return s.run(ctx, s.Today(), metrics.TriggerScheduled)
}

// RunNow executa a varredura manualmente. Sem data, usa o dia corrente.
func (s *HighlightExpirationService) RunNow(ctx context.Context, date *time.Time) (*domain.SweepResult, error) {
	today := s.Today()
	if date != nil {
		today = domain.DateOf(utils.StartOfDay(*date, s.location))
	}
	return s.Sweep(ctx, today)
}

// Sweep expira os destaques vencidos em relação ao dia informado
func (s *HighlightExpirationService) Sweep(ctx context.Context, today domain.Date) (*domain.SweepResult, error) {
	return s.run(ctx, today, metrics.TriggerManual)
}

func (s *HighlightExpirationService) run(ctx context.Context, today domain.Date, trigger string) (*domain.SweepResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = utils.NewUUID()
	}

	result := &domain.SweepResult{
		RunID:     runID,
		Today:     today,
		StartedAt: s.now(),
	}

	// Execução concorrente na mesma instância não é erro: a outra já cobre o dia
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithFields(logrus.Fields{
			"run_id":  runID,
			"trigger": trigger,
		}).Info("Expiração de destaques já está em execução nesta instância")
		s.metrics.IncSkipped(skipReasonRunning)
		result.SkippedInProgress = true
		result.FinishedAt = s.now()
		return result, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = result.StartedAt
	s.syncMutex.Unlock()

	defer func() {
		result.FinishedAt = s.now()
		s.metrics.ObserveDuration(trigger, result.FinishedAt.Sub(result.StartedAt))

		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = result.FinishedAt
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"today":   today.String(),
		"trigger": trigger,
	})

	if s.lock != nil {
		acquired, err := s.lock.Acquire(ctx)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Falha ao adquirir lock da expiração, seguindo sem lock")
		case !acquired:
			logger.Info("Expiração de destaques em execução em outra instância")
			result.SkippedLock = true
			s.metrics.IncSkipped(skipReasonLock)
			s.recordResult(result, nil)
			return result, nil
		default:
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
					logger.WithError(err).Warn("Falha ao liberar lock da expiração")
				}
			}()
		}
	}

	logger.Info("Iniciando expiração de destaques")

	if s.config.Bulk {
		err = s.expireAll(ctx, result)
	} else {
		err = s.expireEach(ctx, result, logger)
	}
	if err != nil {
		s.metrics.AddFailures(metrics.FailureRun, 1)
		s.recordResult(nil, err)
		logger.WithError(err).Error("Expiração de destaques interrompida")
		return nil, err
	}

	s.metrics.AddExpired(result.ExpiredCount)
	s.metrics.AddFailures(metrics.FailureRow, result.FailedCount)
	s.recordResult(result, nil)

	logger.WithFields(logrus.Fields{
		"expired_count": result.ExpiredCount,
		"skipped_count": result.SkippedCount,
		"failed_count":  result.FailedCount,
		"interrupted":   result.Interrupted,
	}).Info("Expiração de destaques concluída")

	return result, nil
}

func (s *HighlightExpirationService) expireEach(ctx context.Context, result *domain.SweepResult, logger *logrus.Entry) error {
	pastDue, err := s.highlightRepo.ListPastDue(ctx, result.Today)
	if err != nil {
		return classifyStoreError(err, "list past due highlights")
	}

	for _, h := range pastDue {
		if err := ctx.Err(); err != nil {
			result.Interrupted = true
			logger.WithError(err).Warn("Expiração de destaques cancelada, retornando resultado parcial")
			return nil
		}

		expired, err := s.highlightRepo.ExpireIfPastDue(ctx, h.ID, result.Today)
		if err != nil {
			if isCancellation(err) {
				result.Interrupted = true
				logger.WithError(err).Warn("Expiração de destaques cancelada, retornando resultado parcial")
				return nil
			}
			result.FailedCount++
			logger.WithFields(logrus.Fields{
				"highlight_id": h.ID,
				"business_id":  h.BusinessID,
			}).WithError(err).Error("Erro ao expirar destaque")
			continue
		}
		if !expired {
			result.SkippedCount++
			logger.WithField("highlight_id", h.ID).Debug("Destaque mudou de estado antes da expiração")
			continue
		}

		result.ExpiredCount++
		logger.WithFields(logrus.Fields{
			"highlight_id": h.ID,
			"business_id":  h.BusinessID,
			"end_date":     h.EndDate.String(),
		}).Info("Destaque expirado")
	}

	return nil
}

func (s *HighlightExpirationService) expireAll(ctx context.Context, result *domain.SweepResult) error {
	count, err := s.highlightRepo.ExpireAllPastDue(ctx, result.Today)
	if err != nil {
		return classifyStoreError(err, "expire past due highlights")
	}
	result.ExpiredCount = count
	return nil
}

func (s *HighlightExpirationService) recordResult(result *domain.SweepResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastResult = result
	s.lastError = ""
}

// GetStatus retorna o status atual do agendador
func (s *HighlightExpirationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"bulk":                   s.config.Bulk,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func classifyStoreError(err error, op string) error {
	if errors.Is(err, repository.ErrStoreUnavailable) || isCancellation(err) {
		return err
	}
	return &repository.StoreError{Op: op, Err: err}
}
