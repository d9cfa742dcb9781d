// Package lifecycle implementa a máquina de estados dos anúncios em destaque.
// Todas as funções são puras: recebem o destaque atual e o dia de referência
// e devolvem uma cópia alterada ou um erro tipado.
package lifecycle

import (
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

const (
	MaxDurationDays = 365
	MaxNotesLength  = 500
)

type Event string

const (
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventPause   Event = "pause"
	EventResume  Event = "resume"
	EventExpire  Event = "expire"
)

var eventVerbs = map[Event]string{
	EventApprove: "aprovar",
	EventReject:  "rejeitar",
	EventPause:   "pausar",
	EventResume:  "retomar",
	EventExpire:  "expirar",
}

func (e Event) Verb() string {
	if verb, ok := eventVerbs[e]; ok {
		return verb
	}
	return string(e)
}

type transitionKey struct {
	from  domain.HighlightStatus
	event Event
}

// transitions é a única fonte das mudanças de status permitidas
var transitions = map[transitionKey]domain.HighlightStatus{
	{domain.HighlightStatusPending, EventApprove}: domain.HighlightStatusActive,
	{domain.HighlightStatusPending, EventReject}:  domain.HighlightStatusRejected,
	{domain.HighlightStatusActive, EventPause}:    domain.HighlightStatusPaused,
	{domain.HighlightStatusPaused, EventResume}:   domain.HighlightStatusActive,
	{domain.HighlightStatusActive, EventExpire}:   domain.HighlightStatusExpired,
}

// eventTargets é o status pretendido por cada evento, usado nas mensagens de erro
var eventTargets = map[Event]domain.HighlightStatus{
	EventApprove: domain.HighlightStatusActive,
	EventReject:  domain.HighlightStatusRejected,
	EventPause:   domain.HighlightStatusPaused,
	EventResume:  domain.HighlightStatusActive,
	EventExpire:  domain.HighlightStatusExpired,
}

// Next retorna o status resultante do evento ou InvalidTransitionError
func Next(from domain.HighlightStatus, event Event) (domain.HighlightStatus, error) {
	to, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return from, &InvalidTransitionError{From: from, To: eventTargets[event], Event: event}
	}
	return to, nil
}

// CanTransition indica se o evento é aceito a partir do status
func CanTransition(from domain.HighlightStatus, event Event) bool {
	_, ok := transitions[transitionKey{from: from, event: event}]
	return ok
}

// Request monta uma nova solicitação de destaque feita pelo dono da empresa.
// As datas são a proposta inicial; o admin pode alterá-las na aprovação.
func Request(req domain.HighlightRequest, today domain.Date) (*domain.Highlight, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	var notes *string
	if req.Notes != nil {
		if trimmed := strings.TrimSpace(*req.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	return &domain.Highlight{
		BusinessID:   req.BusinessID,
		Level:        req.Level,
		Status:       domain.HighlightStatusPending,
		StartDate:    today,
		EndDate:      today.AddDays(req.DurationDays),
		BadgeColor:   req.Level.DefaultColor(),
		BorderColor:  req.Level.DefaultColor(),
		RequestNotes: notes,
	}, nil
}

// ValidateRequest confere os dados da solicitação sem depender do destaque salvo
func ValidateRequest(req domain.HighlightRequest) error {
	if strings.TrimSpace(req.BusinessID) == "" {
		return newValidationError("business_id", "obrigatório")
	}
	if !req.Level.IsValid() {
		return newValidationError("level", "nível desconhecido: "+string(req.Level))
	}
	if req.DurationDays <= 0 {
		return newValidationError("duration_days", "deve ser um número positivo de dias")
	}
	if req.DurationDays > MaxDurationDays {
		return newValidationError("duration_days", "máximo de 365 dias")
	}
	if req.Notes != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Notes)) > MaxNotesLength {
		return newValidationError("notes", "máximo de 500 caracteres")
	}
	return nil
}

// Approve ativa uma solicitação pendente aplicando os ajustes do admin.
// Observações anteriores (ex.: motivo de rejeição) são descartadas.
func Approve(h *domain.Highlight, overrides *domain.HighlightOverrides) (*domain.Highlight, error) {
	next, err := Next(h.Status, EventApprove)
	if err != nil {
		return nil, err
	}

	updated := *h
	updated.Notes = nil
	if err := applyOverrides(&updated, overrides); err != nil {
		return nil, err
	}
	if updated.StartDate.IsZero() || updated.EndDate.IsZero() {
		return nil, newValidationError("start_date", "datas obrigatórias para ativar o destaque")
	}

	updated.Status = next
	return &updated, nil
}

// Reject encerra uma solicitação pendente; o motivo é obrigatório
func Reject(h *domain.Highlight, reason string) (*domain.Highlight, error) {
	reason, err := ValidateRejectReason(reason)
	if err != nil {
		return nil, err
	}

	next, err := Next(h.Status, EventReject)
	if err != nil {
		return nil, err
	}

	updated := *h
	updated.Status = next
	updated.Notes = &reason
	return &updated, nil
}

// ValidateRejectReason devolve o motivo sem espaços nas pontas ou ValidationError
func ValidateRejectReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", newValidationError("reason", "motivo da rejeição é obrigatório")
	}
	if utf8.RuneCountInString(reason) > MaxNotesLength {
		return "", newValidationError("reason", "máximo de 500 caracteres")
	}
	return reason, nil
}

func Pause(h *domain.Highlight) (*domain.Highlight, error) {
	return simpleTransition(h, EventPause)
}

func Resume(h *domain.Highlight) (*domain.Highlight, error) {
	return simpleTransition(h, EventResume)
}

// Expire marca como expirado um destaque ativo cujo período já terminou
func Expire(h *domain.Highlight, today domain.Date) (*domain.Highlight, error) {
	next, err := Next(h.Status, EventExpire)
	if err != nil {
		return nil, err
	}
	if !IsPastDue(h, today) {
		return nil, newValidationError("end_date", "destaque ainda está dentro do período")
	}

	updated := *h
	updated.Status = next
	return &updated, nil
}

// IsPastDue indica se o período terminou antes do dia informado
func IsPastDue(h *domain.Highlight, today domain.Date) bool {
	return !h.EndDate.IsZero() && h.EndDate.Before(today)
}

func simpleTransition(h *domain.Highlight, event Event) (*domain.Highlight, error) {
	next, err := Next(h.Status, event)
	if err != nil {
		return nil, err
	}

	updated := *h
	updated.Status = next
	return &updated, nil
}

// Edit aplica ajustes do admin sem mudar o status
func Edit(h *domain.Highlight, overrides *domain.HighlightOverrides) (*domain.Highlight, error) {
	updated := *h
	if err := applyOverrides(&updated, overrides); err != nil {
		return nil, err
	}
	return &updated, nil
}

// NewDirect monta um destaque criado diretamente pelo admin, em qualquer status
func NewDirect(input domain.NewHighlightInput) (*domain.Highlight, error) {
	status := input.Status
	if status == "" {
		status = domain.HighlightStatusActive
	}

	h := &domain.Highlight{
		BusinessID:  input.BusinessID,
		Level:       input.Level,
		Status:      status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ManualOrder: input.ManualOrder,
		PinToTop:    input.PinToTop,
		BadgeColor:  input.BadgeColor,
		BorderColor: input.BorderColor,
		Notes:       input.Notes,
	}
	if h.BadgeColor == "" {
		h.BadgeColor = h.Level.DefaultColor()
	}
	if h.BorderColor == "" {
		h.BorderColor = h.Level.DefaultColor()
	}

	if err := Validate(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate confere os invariantes de um destaque completo
func Validate(h *domain.Highlight) error {
	if strings.TrimSpace(h.BusinessID) == "" {
		return newValidationError("business_id", "obrigatório")
	}
	if !h.Level.IsValid() {
		return newValidationError("level", "nível desconhecido: "+string(h.Level))
	}
	if !h.Status.IsValid() {
		return newValidationError("status", "status desconhecido: "+string(h.Status))
	}
	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		return newValidationError("start_date", "datas obrigatórias")
	}
	if h.StartDate.After(h.EndDate) {
		return newValidationError("end_date", "data final anterior à data inicial")
	}
	if h.ManualOrder != nil && *h.ManualOrder < 0 {
		return newValidationError("manual_order", "não pode ser negativa")
	}
	if h.Notes != nil && utf8.RuneCountInString(*h.Notes) > MaxNotesLength {
		return newValidationError("notes", "máximo de 500 caracteres")
	}
	return nil
}

// CheckNoHoldingHighlight garante no máximo um destaque em andamento por empresa.
// exceptID permite ignorar o próprio destaque durante a aprovação.
func CheckNoHoldingHighlight(businessID string, existing []*domain.Highlight, exceptID string) error {
	for _, h := range existing {
		if h == nil || h.ID == exceptID || h.BusinessID != businessID {
			continue
		}
		if h.Status.IsHolding() {
			return &DuplicateActiveHighlightError{BusinessID: businessID, Existing: h.ID, Status: h.Status}
		}
	}
	return nil
}

func applyOverrides(h *domain.Highlight, o *domain.HighlightOverrides) error {
	if o != nil {
		if o.Level != nil {
			h.Level = *o.Level
		}
		if o.StartDate != nil {
			h.StartDate = *o.StartDate
		}
		if o.EndDate != nil {
			h.EndDate = *o.EndDate
		}
		if o.ManualOrder != nil {
			order := *o.ManualOrder
			h.ManualOrder = &order
		}
		if o.PinToTop != nil {
			h.PinToTop = *o.PinToTop
		}
		if o.BadgeColor != nil {
			h.BadgeColor = *o.BadgeColor
		}
		if o.BorderColor != nil {
			h.BorderColor = *o.BorderColor
		}
		if o.Notes != nil {
			notes := strings.TrimSpace(*o.Notes)
			h.Notes = &notes
		}
	}

	if !h.Level.IsValid() {
		return newValidationError("level", "nível desconhecido: "+string(h.Level))
	}
	if !h.StartDate.IsZero() && !h.EndDate.IsZero() && h.StartDate.After(h.EndDate) {
		return newValidationError("end_date", "data final anterior à data inicial")
	}
	if h.ManualOrder != nil && *h.ManualOrder < 0 {
		return newValidationError("manual_order", "não pode ser negativa")
	}
	if h.Notes != nil && utf8.RuneCountInString(*h.Notes) > MaxNotesLength {
		return newValidationError("notes", "máximo de 500 caracteres")
	}
	return nil
}
