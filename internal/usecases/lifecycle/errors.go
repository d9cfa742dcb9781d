package lifecycle

import (
	"errors"
	"fmt"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

// Erros base do ciclo de vida dos destaques
var (
	ErrInvalidTransition        = errors.New("invalid highlight transition")
	ErrDuplicateActiveHighlight = errors.New("business already holds a highlight")
	ErrValidation               = errors.New("invalid highlight data")
)

// InvalidTransitionError descreve uma mudança de status não permitida
type InvalidTransitionError struct {
	From  domain.HighlightStatus
	To    domain.HighlightStatus
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("não é possível %s: destaque está %s (transição %s -> %s não permitida)",
		e.Event.Verb(), e.From.Label(), e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateActiveHighlightError indica que a empresa já possui um destaque
// aguardando aprovação, ativo ou pausado
type DuplicateActiveHighlightError struct {
	BusinessID string
	Existing   string
	Status     domain.HighlightStatus
}

func (e *DuplicateActiveHighlightError) Error() string {
	if e.Existing == "" {
		return fmt.Sprintf("empresa %s já possui um destaque em andamento", e.BusinessID)
	}
	return fmt.Sprintf("empresa %s já possui o destaque %s com status %s", e.BusinessID, e.Existing, e.Status)
}

func (e *DuplicateActiveHighlightError) Unwrap() error {
	return ErrDuplicateActiveHighlight
}

// ValidationError aponta o campo inválido e o motivo
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
