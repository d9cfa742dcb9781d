package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/infrastructure/repository/mocks"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type fakeLock struct {
	acquire    bool
	acquireErr error
	acquired   int
	released   int
}

func (l *fakeLock) Acquire(context.Context) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.acquire {
		l.acquired++
	}
	return l.acquire, nil
}

func (l *fakeLock) Release(context.Context) error {
	l.released++
	return nil
}

type sweepFixture struct {
	service       *HighlightExpirationService
	highlightRepo *mocks.MockHighlightRepository
	settingsRepo  *mocks.MockSettingsRepository
	registry      *prometheus.Registry
}

func newSweepFixture(t *testing.T, bulk bool, runLock *fakeLock) *sweepFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	highlightRepo := mocks.NewMockHighlightRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	registry := prometheus.NewRegistry()

	cfg := &config.Config{}
	cfg.HighlightExpiration.CronSchedule = "5 0 * * *"
	cfg.HighlightExpiration.Enabled = true
	cfg.HighlightExpiration.Bulk = bulk

	var service *HighlightExpirationService
	if runLock != nil {
		service = NewHighlightExpirationService(highlightRepo, settingsRepo, runLock, metrics.NewSweepMetrics(registry), cfg)
	} else {
		service = NewHighlightExpirationService(highlightRepo, settingsRepo, nil, metrics.NewSweepMetrics(registry), cfg)
	}
	service.now = func() time.Time {
		return time.Date(2024, time.February, 1, 0, 5, 0, 0, time.Local)
	}

	return &sweepFixture{
		service:       service,
		highlightRepo: highlightRepo,
		settingsRepo:  settingsRepo,
		registry:      registry,
	}
}

func activeHighlight(id string, end domain.Date) *domain.Highlight {
	return &domain.Highlight{
		ID:         id,
		BusinessID: "B-" + id,
		Level:      domain.HighlightLevelPadrao,
		Status:     domain.HighlightStatusActive,
		StartDate:  end.AddDays(-30),
		EndDate:    end,
	}
}

func TestHighlightExpirationService_Sweep(t *testing.T) {
	today := domain.NewDate(2024, time.February, 1)
	rowErr := errors.New("deadlock detected")

	tests := []struct {
		name         string
		pastDue      []*domain.Highlight
		expireResult map[string]bool
		expireErr    map[string]error
		wantExpired  int
		wantSkipped  int
		wantFailed   int
	}{
		{
			name:         "expira todos os vencidos",
			pastDue:      []*domain.Highlight{activeHighlight("H1", today.AddDays(-1)), activeHighlight("H2", today.AddDays(-10))},
			expireResult: map[string]bool{"H1": true, "H2": true},
			wantExpired:  2,
		},
		{
			name:        "nenhum vencido",
			pastDue:     []*domain.Highlight{},
			wantExpired: 0,
		},
		{
			name:         "destaque pausado durante a varredura é pulado",
			pastDue:      []*domain.Highlight{activeHighlight("H1", today.AddDays(-1)), activeHighlight("H2", today.AddDays(-1))},
			expireResult: map[string]bool{"H1": true, "H2": false},
			wantExpired:  1,
			wantSkipped:  1,
		},
		{
			name:         "erro em uma linha não interrompe as demais",
			pastDue:      []*domain.Highlight{activeHighlight("H1", today.AddDays(-1)), activeHighlight("H2", today.AddDays(-1)), activeHighlight("H3", today.AddDays(-2))},
			expireResult: map[string]bool{"H1": true, "H3": true},
			expireErr:    map[string]error{"H2": rowErr},
			wantExpired:  2,
			wantFailed:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSweepFixture(t, false, nil)
			ctx := context.Background()

			f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return(tt.pastDue, nil)
			for _, h := range tt.pastDue {
				f.highlightRepo.EXPECT().
					ExpireIfPastDue(gomock.Any(), h.ID, today).
					Return(tt.expireResult[h.ID], tt.expireErr[h.ID])
			}

			result, err := f.service.Sweep(ctx, today)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.NotEmpty(t, result.RunID)
			assert.True(t, result.Today.Equal(today))
			assert.Equal(t, tt.wantExpired, result.ExpiredCount)
			assert.Equal(t, tt.wantSkipped, result.SkippedCount)
			assert.Equal(t, tt.wantFailed, result.FailedCount)
			assert.False(t, result.SkippedLock)
			assert.False(t, result.FinishedAt.Before(result.StartedAt))

			assert.Equal(t, float64(tt.wantExpired), gatheredValue(t, f.registry, "highlight_sweep_expired_total"))
		})
	}
}

// Segunda execução no mesmo dia não encontra mais nada para expirar
func TestHighlightExpirationService_SweepIsIdempotent(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	ctx := context.Background()
	today := domain.NewDate(2024, time.February, 1)
	h := activeHighlight("H1", domain.NewDate(2024, time.January, 31))

	gomock.InOrder(
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{h}, nil),
		f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H1", today).Return(true, nil),
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{}, nil),
	)

	first, err := f.service.Sweep(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ExpiredCount)

	second, err := f.service.Sweep(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 0, second.ExpiredCount)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestHighlightExpirationService_SweepListFailure(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	today := domain.NewDate(2024, time.February, 1)

	f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return(nil, errors.New("connection refused"))

	result, err := f.service.Sweep(context.Background(), today)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	status := f.service.GetStatus()
	assert.Nil(t, status["last_result"])
	assert.Contains(t, status["last_error"], "connection refused")
	assert.Equal(t, false, status["running"])
}

func TestHighlightExpirationService_Bulk(t *testing.T) {
	today := domain.NewDate(2024, time.February, 1)

	t.Run("usa a procedure", func(t *testing.T) {
		f := newSweepFixture(t, true, nil)
		f.highlightRepo.EXPECT().ExpireAllPastDue(gomock.Any(), today).Return(4, nil)

		result, err := f.service.Sweep(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 4, result.ExpiredCount)
	})

	t.Run("falha da procedure", func(t *testing.T) {
		f := newSweepFixture(t, true, nil)
		f.highlightRepo.EXPECT().ExpireAllPastDue(gomock.Any(), today).
			Return(0, &repository.StoreError{Op: "expire", Err: errors.New("timeout")})

		result, err := f.service.Sweep(context.Background(), today)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	})
}

func TestHighlightExpirationService_Lock(t *testing.T) {
	today := domain.NewDate(2024, time.February, 1)

	t.Run("lock em uso pula a execução", func(t *testing.T) {
		runLock := &fakeLock{acquire: false}
		f := newSweepFixture(t, false, runLock)

		result, err := f.service.Sweep(context.Background(), today)
		require.NoError(t, err)
		assert.True(t, result.SkippedLock)
		assert.Equal(t, 0, result.ExpiredCount)
		assert.Equal(t, 0, runLock.released)
	})

	t.Run("lock adquirido é liberado ao final", func(t *testing.T) {
		runLock := &fakeLock{acquire: true}
		f := newSweepFixture(t, false, runLock)
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{}, nil)

		_, err := f.service.Sweep(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 1, runLock.acquired)
		assert.Equal(t, 1, runLock.released)
	})

	t.Run("erro no redis não impede a varredura", func(t *testing.T) {
		runLock := &fakeLock{acquireErr: errors.New("redis down")}
		f := newSweepFixture(t, false, runLock)
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{}, nil)

		result, err := f.service.Sweep(context.Background(), today)
		require.NoError(t, err)
		assert.False(t, result.SkippedLock)
		assert.Equal(t, 0, runLock.released)
	})
}

func TestHighlightExpirationService_RunScheduled(t *testing.T) {
	today := domain.NewDate(2024, time.February, 1)

	t.Run("desabilitado nas configurações", func(t *testing.T) {
		f := newSweepFixture(t, false, nil)
		f.settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.HighlightSettings{AutoExpireEnabled: false}, nil)

		result, err := f.service.RunScheduled(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("usa o dia corrente", func(t *testing.T) {
		f := newSweepFixture(t, false, nil)
		f.settingsRepo.EXPECT().Get(gomock.Any()).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, day domain.Date) ([]*domain.Highlight, error) {
				assert.True(t, day.Equal(today))
				return []*domain.Highlight{}, nil
			})

		result, err := f.service.RunScheduled(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Today.Equal(today))
	})

	t.Run("erro ao ler configurações segue com a expiração", func(t *testing.T) {
		f := newSweepFixture(t, false, nil)
		f.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("boom"))
		f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), gomock.Any()).Return([]*domain.Highlight{}, nil)

		result, err := f.service.RunScheduled(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestHighlightExpirationService_RunNow(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	date := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.Local)

	f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, day domain.Date) ([]*domain.Highlight, error) {
			assert.Equal(t, "2024-03-10", day.String())
			return []*domain.Highlight{}, nil
		})

	result, err := f.service.RunNow(context.Background(), &date)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", result.Today.String())

	status := f.service.GetStatus()
	assert.Equal(t, result, status["last_result"])
	assert.Equal(t, true, status["sync_enabled"])
}

func TestHighlightExpirationService_InProgress(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	f.service.syncRunning = true

	result, err := f.service.Sweep(context.Background(), domain.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.SkippedInProgress)
	assert.Equal(t, 0, result.ExpiredCount)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, float64(1), gatheredValue(t, f.registry, "highlight_sweep_skipped_total"))
}

func TestHighlightExpirationService_ConcurrentSweeps(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	today := domain.NewDate(2024, time.February, 1)

	listing := make(chan struct{})
	release := make(chan struct{})
	f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).
		DoAndReturn(func(context.Context, domain.Date) ([]*domain.Highlight, error) {
			close(listing)
			<-release
			return []*domain.Highlight{activeHighlight("H1", today.AddDays(-1))}, nil
		})
	f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H1", today).Return(true, nil)

	type outcome struct {
		result *domain.SweepResult
		err    error
	}
	first := make(chan outcome, 1)
	go func() {
		result, err := f.service.Sweep(context.Background(), today)
		first <- outcome{result, err}
	}()
	<-listing

	second, err := f.service.Sweep(context.Background(), today)
	require.NoError(t, err)
	assert.True(t, second.SkippedInProgress)
	assert.Equal(t, 0, second.ExpiredCount)

	close(release)
	got := <-first
	require.NoError(t, got.err)
	assert.False(t, got.result.SkippedInProgress)
	assert.Equal(t, 1, got.result.ExpiredCount)
}

func TestHighlightExpirationService_CancelledKeepsPartialCount(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	today := domain.NewDate(2024, time.February, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{
		activeHighlight("H1", today.AddDays(-1)),
		activeHighlight("H2", today.AddDays(-1)),
		activeHighlight("H3", today.AddDays(-1)),
	}, nil)
	f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H1", today).Return(true, nil)
	f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H2", today).
		DoAndReturn(func(context.Context, string, domain.Date) (bool, error) {
			cancel()
			return true, nil
		})

	result, err := f.service.Sweep(ctx, today)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Interrupted)
	assert.Equal(t, 2, result.ExpiredCount)
	assert.Equal(t, 0, result.FailedCount)

	assert.Equal(t, float64(2), gatheredValue(t, f.registry, "highlight_sweep_expired_total"))
	assert.Equal(t, float64(0), gatheredValue(t, f.registry, "highlight_sweep_failures_total"))
	assert.Equal(t, result, f.service.GetStatus()["last_result"])
}

func TestHighlightExpirationService_CancelledDuringRowUpdate(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	today := domain.NewDate(2024, time.February, 1)

	f.highlightRepo.EXPECT().ListPastDue(gomock.Any(), today).Return([]*domain.Highlight{
		activeHighlight("H1", today.AddDays(-1)),
		activeHighlight("H2", today.AddDays(-1)),
	}, nil)
	f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H1", today).Return(true, nil)
	f.highlightRepo.EXPECT().ExpireIfPastDue(gomock.Any(), "H2", today).Return(false, context.Canceled)

	result, err := f.service.Sweep(context.Background(), today)
	require.NoError(t, err)
	assert.True(t, result.Interrupted)
	assert.Equal(t, 1, result.ExpiredCount)
	assert.Equal(t, 0, result.FailedCount)
}

func TestHighlightExpirationService_StartDisabled(t *testing.T) {
	f := newSweepFixture(t, false, nil)
	f.service.config.Enabled = false

	assert.NoError(t, f.service.Start(context.Background()))
	assert.Empty(t, f.service.scheduler.Jobs())
}

func gatheredValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)

	value := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			value += metric.GetCounter().GetValue()
		}
	}
	return value
}
