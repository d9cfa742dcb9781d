// Package highlighting orquestra as solicitações, aprovações e a administração
// dos anúncios em destaque
package highlighting

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/lifecycle"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

type HighlightService interface {
	RequestHighlight(ctx context.Context, actor domain.Actor, businessID string, req domain.HighlightRequest, today domain.Date) (*domain.Highlight, error)
	GetBusinessHighlight(ctx context.Context, actor domain.Actor, businessID string) (*domain.Highlight, error)

	Approve(ctx context.Context, id string, overrides *domain.HighlightOverrides) (*domain.Highlight, error)
	Reject(ctx context.Context, id string, reason string) (*domain.Highlight, error)
	Pause(ctx context.Context, id string) (*domain.Highlight, error)
	Resume(ctx context.Context, id string) (*domain.Highlight, error)
	Create(ctx context.Context, actor domain.Actor, input domain.NewHighlightInput) (*domain.Highlight, error)
	Update(ctx context.Context, id string, overrides *domain.HighlightOverrides) (*domain.Highlight, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters domain.HighlightFilters) ([]*domain.HighlightWithBusiness, error)
	Stats(ctx context.Context) (*domain.HighlightStats, error)

	GetSettings(ctx context.Context) (*domain.HighlightSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.HighlightSettings) (*domain.HighlightSettings, error)

	ActiveHighlights(ctx context.Context, today domain.Date) ([]*domain.HighlightWithBusiness, error)
}

type Service struct {
	highlightRepository repository.HighlightRepository
	businessRepository  repository.BusinessRepository
	settingsRepository  repository.SettingsRepository
	validate            *validator.Validate
}

func NewService(
	highlightRepository repository.HighlightRepository,
	businessRepository repository.BusinessRepository,
	settingsRepository repository.SettingsRepository,
) HighlightService {
	return &Service{
		highlightRepository: highlightRepository,
		businessRepository:  businessRepository,
		settingsRepository:  settingsRepository,
		validate:            utils.NewValidator(),
	}
}

// RequestHighlight registra a solicitação do dono da empresa, que fica
// aguardando aprovação do admin
func (s *Service) RequestHighlight(ctx context.Context, actor domain.Actor, businessID string, req domain.HighlightRequest, today domain.Date) (*domain.Highlight, error) {
	req.BusinessID = businessID
	h, err := lifecycle.Request(req, today)
	if err != nil {
		return nil, wrapError(err, "")
	}

	if _, err := s.ownedBusiness(ctx, actor, businessID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, "")
	}
	h.BadgeColor = settings.ColorFor(h.Level)
	h.BorderColor = h.BadgeColor

	if err := s.checkNoHoldingHighlight(ctx, businessID, ""); err != nil {
		return nil, err
	}
	if err := s.checkCapacity(ctx, settings); err != nil {
		return nil, err
	}

	h.ID = utils.NewUUID()
	if actor.UserID != "" {
		createdBy := actor.UserID
		h.CreatedBy = &createdBy
	}

	if err := s.insert(ctx, h); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"highlight_id":  h.ID,
		"business_id":   h.BusinessID,
		"level":         h.Level,
		"duration_days": req.DurationDays,
		"user_id":       actor.UserID,
	}).Info("Solicitação de destaque registrada")

	return h, nil
}

// GetBusinessHighlight retorna o destaque em andamento mais recente da empresa
func (s *Service) GetBusinessHighlight(ctx context.Context, actor domain.Actor, businessID string) (*domain.Highlight, error) {
	if _, err := s.ownedBusiness(ctx, actor, businessID); err != nil {
		return nil, err
	}

	highlights, err := s.highlightRepository.ListByBusiness(ctx, businessID, domain.HoldingHighlightStatuses...)
	if err != nil {
		return nil, wrapError(err, "")
	}
	if len(highlights) == 0 {
		return nil, nil
	}
	return highlights[0], nil
}

func (s *Service) Approve(ctx context.Context, id string, overrides *domain.HighlightOverrides) (*domain.Highlight, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Approve(current, overrides)
	if err != nil {
		return nil, wrapError(err, id)
	}

	if err := s.checkNoHoldingHighlight(ctx, current.BusinessID, current.ID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, id)
	}
	if err := s.checkCapacity(ctx, settings); err != nil {
		return nil, err
	}

	return s.persist(ctx, updated, current.Status, lifecycle.EventApprove)
}

func (s *Service) Reject(ctx context.Context, id string, reason string) (*domain.Highlight, error) {
	if _, err := lifecycle.ValidateRejectReason(reason); err != nil {
		return nil, wrapError(err, id)
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Reject(current, reason)
	if err != nil {
		return nil, wrapError(err, id)
	}

	return s.persist(ctx, updated, current.Status, lifecycle.EventReject)
}

func (s *Service) Pause(ctx context.Context, id string) (*domain.Highlight, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Pause(current)
	if err != nil {
		return nil, wrapError(err, id)
	}

	return s.persist(ctx, updated, current.Status, lifecycle.EventPause)
}

func (s *Service) Resume(ctx context.Context, id string) (*domain.Highlight, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Resume(current)
	if err != nil {
		return nil, wrapError(err, id)
	}

	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, id)
	}
	if err := s.checkCapacity(ctx, settings); err != nil {
		return nil, err
	}

	return s.persist(ctx, updated, current.Status, lifecycle.EventResume)
}

// Create cadastra um destaque diretamente, sem passar pela solicitação
func (s *Service) Create(ctx context.Context, actor domain.Actor, input domain.NewHighlightInput) (*domain.Highlight, error) {
	business, err := s.businessRepository.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, wrapError(err, "")
	}
	if business == nil {
		return nil, wrapError(NewHighlightError(ErrBusinessNotFound, "", "empresa "+input.BusinessID), "")
	}

	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, "")
	}
	if input.BadgeColor == "" {
		input.BadgeColor = settings.ColorFor(input.Level)
	}
	if input.BorderColor == "" {
		input.BorderColor = settings.ColorFor(input.Level)
	}

	h, err := lifecycle.NewDirect(input)
	if err != nil {
		return nil, wrapError(err, "")
	}

	if h.Status.IsHolding() {
		if err := s.checkNoHoldingHighlight(ctx, h.BusinessID, ""); err != nil {
			return nil, err
		}
	}
	if h.Status == domain.HighlightStatusActive {
		if err := s.checkCapacity(ctx, settings); err != nil {
			return nil, err
		}
	}

	h.ID = utils.NewUUID()
	if actor.UserID != "" {
		createdBy := actor.UserID
		h.CreatedBy = &createdBy
	}

	if err := s.insert(ctx, h); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"highlight_id": h.ID,
		"business_id":  h.BusinessID,
		"status":       h.Status,
		"user_id":      actor.UserID,
	}).Info("Destaque criado pelo admin")

	return h, nil
}

// Update edita datas, nível, ordem e cores sem mudar o status
func (s *Service) Update(ctx context.Context, id string, overrides *domain.HighlightOverrides) (*domain.Highlight, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Edit(current, overrides)
	if err != nil {
		return nil, wrapError(err, id)
	}
	if err := lifecycle.Validate(updated); err != nil {
		return nil, wrapError(err, id)
	}

	return s.persist(ctx, updated, current.Status, "")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.highlightRepository.Delete(ctx, id)
	if err != nil {
		return wrapError(err, id)
	}
	if !deleted {
		return wrapError(NewHighlightErrorWithID(ErrHighlightNotFound, "", id, ""), id)
	}

	logrus.WithField("highlight_id", id).Info("Destaque removido")
	return nil
}

func (s *Service) List(ctx context.Context, filters domain.HighlightFilters) ([]*domain.HighlightWithBusiness, error) {
	highlights, err := s.highlightRepository.List(ctx, filters)
	if err != nil {
		return nil, wrapError(err, "")
	}
	return highlights, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.HighlightStats, error) {
	counts, err := s.highlightRepository.CountByStatus(ctx)
	if err != nil {
		return nil, wrapError(err, "")
	}

	stats := &domain.HighlightStats{
		Active:   counts[domain.HighlightStatusActive],
		Pending:  counts[domain.HighlightStatusPending],
		Paused:   counts[domain.HighlightStatusPaused],
		Expired:  counts[domain.HighlightStatusExpired],
		Rejected: counts[domain.HighlightStatusRejected],
	}
	for _, count := range counts {
		stats.Total += count
	}
	return stats, nil
}

func (s *Service) GetSettings(ctx context.Context) (*domain.HighlightSettings, error) {
	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, "")
	}
	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings *domain.HighlightSettings) (*domain.HighlightSettings, error) {
	if settings == nil {
		return nil, wrapError(&lifecycle.ValidationError{Field: "settings", Reason: "obrigatório"}, "")
	}
	if err := s.validate.Struct(settings); err != nil {
		return nil, wrapError(validationError(err), "")
	}

	current, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return nil, wrapError(err, "")
	}
	settings.ID = current.ID

	updated, err := s.settingsRepository.Update(ctx, settings)
	if err != nil {
		return nil, wrapError(err, "")
	}

	logrus.WithFields(logrus.Fields{
		"default_duration_days": updated.DefaultDurationDays,
		"auto_expire_enabled":   updated.AutoExpireEnabled,
	}).Info("Configurações de destaque atualizadas")

	return updated, nil
}

// ActiveHighlights é a projeção pública dos destaques vigentes no dia
func (s *Service) ActiveHighlights(ctx context.Context, today domain.Date) ([]*domain.HighlightWithBusiness, error) {
	highlights, err := s.highlightRepository.ListActiveWithBusiness(ctx, today)
	if err != nil {
		return nil, wrapError(err, "")
	}
	return highlights, nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Highlight, error) {
	h, err := s.highlightRepository.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError(err, id)
	}
	if h == nil {
		return nil, wrapError(NewHighlightErrorWithID(ErrHighlightNotFound, "", id, ""), id)
	}
	return h, nil
}

// ownedBusiness confere se a empresa existe e pertence ao usuário. Admin
// acessa qualquer empresa.
func (s *Service) ownedBusiness(ctx context.Context, actor domain.Actor, businessID string) (*domain.Business, error) {
	business, err := s.businessRepository.GetByID(ctx, businessID)
	if err != nil {
		return nil, wrapError(err, "")
	}
	if business == nil {
		return nil, wrapError(NewHighlightError(ErrBusinessNotFound, "", "empresa "+businessID), "")
	}

	if actor.IsAdmin() {
		return business, nil
	}
	if business.OwnerID == nil || *business.OwnerID != actor.UserID {
		return nil, wrapError(fmt.Errorf("empresa %s: %w", businessID, ErrNotBusinessOwner), "")
	}
	return business, nil
}

func (s *Service) checkNoHoldingHighlight(ctx context.Context, businessID string, exceptID string) error {
	existing, err := s.highlightRepository.ListByBusiness(ctx, businessID, domain.HoldingHighlightStatuses...)
	if err != nil {
		return wrapError(err, exceptID)
	}
	return wrapError(lifecycle.CheckNoHoldingHighlight(businessID, existing, exceptID), exceptID)
}

func (s *Service) checkCapacity(ctx context.Context, settings *domain.HighlightSettings) error {
	if settings == nil || settings.MaxActiveHighlights == nil {
		return nil
	}

	counts, err := s.highlightRepository.CountByStatus(ctx)
	if err != nil {
		return wrapError(err, "")
	}
	if counts[domain.HighlightStatusActive] >= *settings.MaxActiveHighlights {
		return wrapError(NewHighlightError(ErrHighlightCapacityReached, "", fmt.Sprintf("máximo de %d destaques ativos", *settings.MaxActiveHighlights)), "")
	}
	return nil
}

func (s *Service) insert(ctx context.Context, h *domain.Highlight) error {
	err := s.highlightRepository.Create(ctx, h)
	if errors.Is(err, repository.ErrHoldingHighlightExists) {
		return wrapError(&lifecycle.DuplicateActiveHighlightError{BusinessID: h.BusinessID}, "")
	}
	return wrapError(err, h.ID)
}

// persist grava a mudança somente se o status no banco ainda for o lido.
// Quando outra operação venceu a corrida, relê o registro para reportar o
// status atual.
func (s *Service) persist(ctx context.Context, updated *domain.Highlight, expected domain.HighlightStatus, event lifecycle.Event) (*domain.Highlight, error) {
	ok, err := s.highlightRepository.UpdateIfStatus(ctx, updated, expected)
	if errors.Is(err, repository.ErrHoldingHighlightExists) {
		return nil, wrapError(&lifecycle.DuplicateActiveHighlightError{BusinessID: updated.BusinessID}, updated.ID)
	}
	if err != nil {
		return nil, wrapError(err, updated.ID)
	}

	if !ok {
		latest, err := s.get(ctx, updated.ID)
		if err != nil {
			return nil, err
		}
		if event == "" {
			return nil, wrapError(fmt.Errorf("destaque está %s: %w", latest.Status.Label(), ErrHighlightChanged), updated.ID)
		}
		return nil, wrapError(&lifecycle.InvalidTransitionError{From: latest.Status, To: updated.Status, Event: event}, updated.ID)
	}

	logrus.WithFields(logrus.Fields{
		"highlight_id": updated.ID,
		"business_id":  updated.BusinessID,
		"event":        event,
		"from":         expected,
		"status":       updated.Status,
	}).Info("Destaque atualizado")

	return updated, nil
}

func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &lifecycle.ValidationError{Field: fe.Field(), Reason: "falhou na regra " + fe.Tag()}
	}
	return &lifecycle.ValidationError{Field: "settings", Reason: err.Error()}
}
