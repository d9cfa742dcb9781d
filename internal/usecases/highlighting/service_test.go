package highlighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/infrastructure/repository/mocks"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/lifecycle"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service       HighlightService
	highlightRepo *mocks.MockHighlightRepository
	businessRepo  *mocks.MockBusinessRepository
	settingsRepo  *mocks.MockSettingsRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		highlightRepo: mocks.NewMockHighlightRepository(ctrl),
		businessRepo:  mocks.NewMockBusinessRepository(ctrl),
		settingsRepo:  mocks.NewMockSettingsRepository(ctrl),
	}
	f.service = NewService(f.highlightRepo, f.businessRepo, f.settingsRepo)
	return f
}

func ptr[T any](v T) *T {
	return &v
}

var (
	owner = domain.Actor{UserID: "U1", Role: domain.RoleBusinessOwner}
	admin = domain.Actor{UserID: "A1", Role: domain.RoleAdmin}
)

func ownedBusiness() *domain.Business {
	return &domain.Business{ID: "B1", Name: "Padaria Central", Status: domain.BusinessStatusApproved, OwnerID: ptr("U1")}
}

func pendingHighlight() *domain.Highlight {
	return &domain.Highlight{
		ID:         "11111111-1111-1111-1111-111111111111",
		BusinessID: "B1",
		Level:      domain.HighlightLevelPadrao,
		Status:     domain.HighlightStatusPending,
		StartDate:  domain.NewDate(2024, time.January, 1),
		EndDate:    domain.NewDate(2024, time.January, 31),
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var highlightErr *HighlightError
	require.ErrorAs(t, err, &highlightErr)
	assert.Equal(t, code, highlightErr.Code)
}

func TestService_RequestHighlight(t *testing.T) {
	ctx := context.Background()
	today := domain.NewDate(2024, time.January, 1)
	request := domain.HighlightRequest{Level: domain.HighlightLevelPadrao, DurationDays: 30}

	t.Run("cria solicitação aguardando aprovação", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().
			ListByBusiness(ctx, "B1", domain.HighlightStatusPending, domain.HighlightStatusActive, domain.HighlightStatusPaused).
			Return([]*domain.Highlight{}, nil)
		f.highlightRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h *domain.Highlight) error {
			assert.NotEmpty(t, h.ID)
			return nil
		})

		h, err := f.service.RequestHighlight(ctx, owner, "B1", request, today)
		require.NoError(t, err)

		assert.Equal(t, domain.HighlightStatusPending, h.Status)
		assert.Equal(t, "2024-01-01", h.StartDate.String())
		assert.Equal(t, "2024-01-31", h.EndDate.String())
		assert.Equal(t, "B1", h.BusinessID)
		assert.Equal(t, domain.HighlightLevelPadrao.DefaultColor(), h.BadgeColor)
		require.NotNil(t, h.CreatedBy)
		assert.Equal(t, "U1", *h.CreatedBy)
	})

	t.Run("empresa já possui destaque ativo", func(t *testing.T) {
		f := newServiceFixture(t)
		existing := pendingHighlight()
		existing.Status = domain.HighlightStatusActive

		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return([]*domain.Highlight{existing}, nil)

		h, err := f.service.RequestHighlight(ctx, owner, "B1", request, today)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, lifecycle.ErrDuplicateActiveHighlight)
		assertCode(t, err, apiErrors.ErrDuplicateActiveHighlight)

		var duplicateErr *lifecycle.DuplicateActiveHighlightError
		require.ErrorAs(t, err, &duplicateErr)
		assert.Equal(t, existing.ID, duplicateErr.Existing)
	})

	t.Run("índice único fecha a corrida entre solicitações", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return(nil, nil)
		f.highlightRepo.EXPECT().Create(ctx, gomock.Any()).Return(repository.ErrHoldingHighlightExists)

		_, err := f.service.RequestHighlight(ctx, owner, "B1", request, today)
		assert.ErrorIs(t, err, lifecycle.ErrDuplicateActiveHighlight)
	})

	t.Run("usuário não é dono da empresa", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)

		other := domain.Actor{UserID: "U2", Role: domain.RoleBusinessOwner}
		_, err := f.service.RequestHighlight(ctx, other, "B1", request, today)
		assert.ErrorIs(t, err, ErrNotBusinessOwner)
		assertCode(t, err, apiErrors.ErrNotBusinessOwner)
	})

	t.Run("empresa inexistente", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B9").Return(nil, nil)

		_, err := f.service.RequestHighlight(ctx, owner, "B9", request, today)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
		assertCode(t, err, apiErrors.ErrHighlightNotFound)
	})

	t.Run("duração inválida", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.RequestHighlight(ctx, owner, "B1", domain.HighlightRequest{Level: domain.HighlightLevelAlto}, today)
		assert.ErrorIs(t, err, lifecycle.ErrValidation)
		assertCode(t, err, apiErrors.ErrInvalidField)
	})

	t.Run("validação antes do banco indisponível", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, &repository.StoreError{Op: "business: get", Err: errors.New("connection refused")}).
			AnyTimes()

		invalid := domain.HighlightRequest{Level: domain.HighlightLevelPadrao, DurationDays: 0}
		_, err := f.service.RequestHighlight(ctx, owner, "B1", invalid, today)
		assert.ErrorIs(t, err, lifecycle.ErrValidation)
		assert.NotErrorIs(t, err, repository.ErrStoreUnavailable)
		assertCode(t, err, apiErrors.ErrInvalidField)
	})

	t.Run("limite de destaques ativos atingido", func(t *testing.T) {
		f := newServiceFixture(t)
		settings := domain.DefaultHighlightSettings()
		settings.MaxActiveHighlights = ptr(2)

		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return(nil, nil)
		f.highlightRepo.EXPECT().CountByStatus(ctx).Return(map[domain.HighlightStatus]int{domain.HighlightStatusActive: 2}, nil)

		_, err := f.service.RequestHighlight(ctx, owner, "B1", request, today)
		assert.ErrorIs(t, err, ErrHighlightCapacityReached)
		assertCode(t, err, apiErrors.ErrHighlightCapacity)
	})

	t.Run("banco indisponível", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B1").
			Return(nil, &repository.StoreError{Op: "business: get", Err: errors.New("connection refused")})

		_, err := f.service.RequestHighlight(ctx, owner, "B1", request, today)
		assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
		assertCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_GetBusinessHighlight(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna o mais recente", func(t *testing.T) {
		f := newServiceFixture(t)
		latest := pendingHighlight()
		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return([]*domain.Highlight{latest}, nil)

		h, err := f.service.GetBusinessHighlight(ctx, owner, "B1")
		require.NoError(t, err)
		assert.Equal(t, latest, h)
	})

	t.Run("admin sem destaque", func(t *testing.T) {
		f := newServiceFixture(t)
		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return(nil, nil)

		h, err := f.service.GetBusinessHighlight(ctx, admin, "B1")
		require.NoError(t, err)
		assert.Nil(t, h)
	})
}

func TestService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("aprova com ajustes", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		current.Notes = ptr("motivo antigo")

		f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return([]*domain.Highlight{current}, nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusPending).Return(true, nil)

		h, err := f.service.Approve(ctx, current.ID, &domain.HighlightOverrides{ManualOrder: ptr(1), PinToTop: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusActive, h.Status)
		assert.Nil(t, h.Notes)
		assert.True(t, h.PinToTop)
		require.NotNil(t, h.ManualOrder)
		assert.Equal(t, 1, *h.ManualOrder)
		assert.Equal(t, domain.HighlightStatusPending, current.Status)
	})

	t.Run("destaque já ativo", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		current.Status = domain.HighlightStatusActive
		f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)

		_, err := f.service.Approve(ctx, current.ID, nil)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assertCode(t, err, apiErrors.ErrInvalidTransition)
	})

	t.Run("outra operação rejeitou antes", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		rejected := pendingHighlight()
		rejected.Status = domain.HighlightStatusRejected

		gomock.InOrder(
			f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil),
			f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return(nil, nil),
			f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil),
			f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusPending).Return(false, nil),
			f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(rejected, nil),
		)

		_, err := f.service.Approve(ctx, current.ID, nil)
		var transitionErr *lifecycle.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, domain.HighlightStatusRejected, transitionErr.From)
		assert.Equal(t, lifecycle.EventApprove, transitionErr.Event)
	})

	t.Run("empresa possui outro destaque em andamento", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		other := pendingHighlight()
		other.ID = "22222222-2222-2222-2222-222222222222"
		other.Status = domain.HighlightStatusPaused

		f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return([]*domain.Highlight{current, other}, nil)

		_, err := f.service.Approve(ctx, current.ID, nil)
		assert.ErrorIs(t, err, lifecycle.ErrDuplicateActiveHighlight)
	})

	t.Run("destaque inexistente", func(t *testing.T) {
		f := newServiceFixture(t)
		f.highlightRepo.EXPECT().GetByID(ctx, "nao-existe").Return(nil, nil)

		_, err := f.service.Approve(ctx, "nao-existe", nil)
		assert.ErrorIs(t, err, ErrHighlightNotFound)
		assertCode(t, err, apiErrors.ErrHighlightNotFound)
	})
}

func TestService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("motivo vazio", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()

		_, err := f.service.Reject(ctx, current.ID, "   ")
		var validationErr *lifecycle.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "reason", validationErr.Field)

		var highlightErr *HighlightError
		require.ErrorAs(t, err, &highlightErr)
		assert.Equal(t, map[string]string{"field": "reason", "reason": validationErr.Reason}, highlightErr.ErrorDetails())
	})

	t.Run("motivo vazio com banco indisponível", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		f.highlightRepo.EXPECT().GetByID(gomock.Any(), current.ID).
			Return(nil, &repository.StoreError{Op: "highlight: get", Err: errors.New("connection refused")}).
			AnyTimes()

		_, err := f.service.Reject(ctx, current.ID, "   ")
		assert.ErrorIs(t, err, lifecycle.ErrValidation)
		assert.NotErrorIs(t, err, repository.ErrStoreUnavailable)
		assertCode(t, err, apiErrors.ErrInvalidField)
	})

	t.Run("rejeita com motivo", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)
		f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusPending).Return(true, nil)

		h, err := f.service.Reject(ctx, current.ID, "Fotos de baixa qualidade")
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusRejected, h.Status)
		require.NotNil(t, h.Notes)
		assert.Equal(t, "Fotos de baixa qualidade", *h.Notes)
	})
}

func TestService_PauseResume(t *testing.T) {
	ctx := context.Background()

	f := newServiceFixture(t)
	active := pendingHighlight()
	active.Status = domain.HighlightStatusActive
	paused := pendingHighlight()
	paused.Status = domain.HighlightStatusPaused

	f.highlightRepo.EXPECT().GetByID(ctx, active.ID).Return(active, nil)
	f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusActive).Return(true, nil)

	h, err := f.service.Pause(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HighlightStatusPaused, h.Status)
	assert.True(t, h.EndDate.Equal(active.EndDate))

	f.highlightRepo.EXPECT().GetByID(ctx, paused.ID).Return(paused, nil)
	f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
	f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusPaused).Return(true, nil)

	h, err = f.service.Resume(ctx, paused.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HighlightStatusActive, h.Status)

	expired := pendingHighlight()
	expired.Status = domain.HighlightStatusExpired
	f.highlightRepo.EXPECT().GetByID(ctx, expired.ID).Return(expired, nil)

	_, err = f.service.Pause(ctx, expired.ID)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestService_ResumeCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("limite atingido impede retomada", func(t *testing.T) {
		f := newServiceFixture(t)
		paused := pendingHighlight()
		paused.Status = domain.HighlightStatusPaused
		settings := domain.DefaultHighlightSettings()
		settings.MaxActiveHighlights = ptr(1)

		f.highlightRepo.EXPECT().GetByID(ctx, paused.ID).Return(paused, nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
		f.highlightRepo.EXPECT().CountByStatus(ctx).Return(map[domain.HighlightStatus]int{domain.HighlightStatusActive: 1}, nil)

		h, err := f.service.Resume(ctx, paused.ID)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, ErrHighlightCapacityReached)
		assertCode(t, err, apiErrors.ErrHighlightCapacity)
	})

	t.Run("retoma com vaga disponível", func(t *testing.T) {
		f := newServiceFixture(t)
		paused := pendingHighlight()
		paused.Status = domain.HighlightStatusPaused
		settings := domain.DefaultHighlightSettings()
		settings.MaxActiveHighlights = ptr(2)

		f.highlightRepo.EXPECT().GetByID(ctx, paused.ID).Return(paused, nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
		f.highlightRepo.EXPECT().CountByStatus(ctx).Return(map[domain.HighlightStatus]int{domain.HighlightStatusActive: 1}, nil)
		f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusPaused).Return(true, nil)

		h, err := f.service.Resume(ctx, paused.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusActive, h.Status)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.NewHighlightInput{
		BusinessID: "B1",
		Level:      domain.HighlightLevelPremium,
		StartDate:  domain.NewDate(2024, time.January, 1),
		EndDate:    domain.NewDate(2024, time.January, 31),
	}

	t.Run("cria ativo com cores das configurações", func(t *testing.T) {
		f := newServiceFixture(t)
		settings := domain.DefaultHighlightSettings()
		settings.PremiumColor = "#000000"

		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
		f.highlightRepo.EXPECT().ListByBusiness(ctx, "B1", gomock.Any()).Return(nil, nil)
		f.highlightRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		h, err := f.service.Create(ctx, admin, input)
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusActive, h.Status)
		assert.Equal(t, "#000000", h.BadgeColor)
		assert.Equal(t, "A1", *h.CreatedBy)
	})

	t.Run("status terminal não verifica duplicidade", func(t *testing.T) {
		f := newServiceFixture(t)
		expiredInput := input
		expiredInput.Status = domain.HighlightStatusExpired

		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)
		f.highlightRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		h, err := f.service.Create(ctx, admin, expiredInput)
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusExpired, h.Status)
	})

	t.Run("datas invertidas", func(t *testing.T) {
		f := newServiceFixture(t)
		invalid := input
		invalid.StartDate, invalid.EndDate = input.EndDate, input.StartDate

		f.businessRepo.EXPECT().GetByID(ctx, "B1").Return(ownedBusiness(), nil)
		f.settingsRepo.EXPECT().Get(ctx).Return(domain.DefaultHighlightSettings(), nil)

		_, err := f.service.Create(ctx, admin, invalid)
		assert.ErrorIs(t, err, lifecycle.ErrValidation)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("edita sem mudar status", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		current.Status = domain.HighlightStatusActive
		newEnd := domain.NewDate(2024, time.February, 15)

		f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)
		f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusActive).Return(true, nil)

		h, err := f.service.Update(ctx, current.ID, &domain.HighlightOverrides{EndDate: &newEnd})
		require.NoError(t, err)
		assert.Equal(t, domain.HighlightStatusActive, h.Status)
		assert.Equal(t, "2024-02-15", h.EndDate.String())
	})

	t.Run("status mudou durante a edição", func(t *testing.T) {
		f := newServiceFixture(t)
		current := pendingHighlight()
		current.Status = domain.HighlightStatusActive
		expired := pendingHighlight()
		expired.Status = domain.HighlightStatusExpired

		gomock.InOrder(
			f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil),
			f.highlightRepo.EXPECT().UpdateIfStatus(ctx, gomock.Any(), domain.HighlightStatusActive).Return(false, nil),
			f.highlightRepo.EXPECT().GetByID(ctx, current.ID).Return(expired, nil),
		)

		_, err := f.service.Update(ctx, current.ID, &domain.HighlightOverrides{PinToTop: ptr(true)})
		assert.ErrorIs(t, err, ErrHighlightChanged)
		assertCode(t, err, apiErrors.ErrInvalidTransition)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	f.highlightRepo.EXPECT().Delete(ctx, "H1").Return(true, nil)
	assert.NoError(t, f.service.Delete(ctx, "H1"))

	f.highlightRepo.EXPECT().Delete(ctx, "H2").Return(false, nil)
	err := f.service.Delete(ctx, "H2")
	assert.ErrorIs(t, err, ErrHighlightNotFound)
	assertCode(t, err, apiErrors.ErrHighlightNotFound)
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	f.highlightRepo.EXPECT().CountByStatus(ctx).Return(map[domain.HighlightStatus]int{
		domain.HighlightStatusActive:   3,
		domain.HighlightStatusPending:  2,
		domain.HighlightStatusExpired:  4,
		domain.HighlightStatusRejected: 1,
	}, nil)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.HighlightStats{Total: 10, Active: 3, Pending: 2, Expired: 4, Rejected: 1}, stats)
}

func TestService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("duração padrão inválida", func(t *testing.T) {
		f := newServiceFixture(t)
		settings := domain.DefaultHighlightSettings()
		settings.DefaultDurationDays = 0

		_, err := f.service.UpdateSettings(ctx, settings)
		var validationErr *lifecycle.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "default_duration_days", validationErr.Field)
	})

	t.Run("mantém o ID do registro existente", func(t *testing.T) {
		f := newServiceFixture(t)
		current := domain.DefaultHighlightSettings()
		current.ID = "S1"
		input := domain.DefaultHighlightSettings()
		input.AutoExpireEnabled = false

		f.settingsRepo.EXPECT().Get(ctx).Return(current, nil)
		f.settingsRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.HighlightSettings) (*domain.HighlightSettings, error) {
				assert.Equal(t, "S1", s.ID)
				return s, nil
			})

		updated, err := f.service.UpdateSettings(ctx, input)
		require.NoError(t, err)
		assert.False(t, updated.AutoExpireEnabled)
	})
}

func TestService_ActiveHighlights(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	today := domain.NewDate(2024, time.January, 15)

	rows := []*domain.HighlightWithBusiness{{Highlight: *pendingHighlight(), Business: &domain.BusinessSummary{ID: "B1"}}}
	f.highlightRepo.EXPECT().ListActiveWithBusiness(ctx, today).Return(rows, nil)

	got, err := f.service.ActiveHighlights(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
