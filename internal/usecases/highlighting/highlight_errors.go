package highlighting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/usecases/lifecycle"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
)

// Erros específicos para o contexto de destaques
var (
	ErrHighlightNotFound        = errors.New("highlight not found")
	ErrBusinessNotFound         = errors.New("business not found")
	ErrNotBusinessOwner         = errors.New("user does not own the business")
	ErrHighlightCapacityReached = errors.New("maximum number of active highlights reached")
	ErrHighlightChanged         = errors.New("highlight changed by another operation")
)

// HighlightError é um erro com contexto adicional para destaques
type HighlightError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	HighlightID string // ID do destaque envolvido (quando aplicável)
	Details     string // Detalhes adicionais
}

func (e *HighlightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *HighlightError) Unwrap() error {
	return e.Err
}

func (e *HighlightError) ErrorCode() string {
	return e.Code
}

// ErrorDetails expõe o campo inválido nas falhas de validação
func (e *HighlightError) ErrorDetails() any {
	var validationErr *lifecycle.ValidationError
	if errors.As(e.Err, &validationErr) {
		return map[string]string{"field": validationErr.Field, "reason": validationErr.Reason}
	}

	var duplicateErr *lifecycle.DuplicateActiveHighlightError
	if errors.As(e.Err, &duplicateErr) && duplicateErr.Existing != "" {
		return map[string]string{"existing_highlight_id": duplicateErr.Existing, "status": string(duplicateErr.Status)}
	}

	if e.HighlightID != "" {
		return map[string]string{"highlight_id": e.HighlightID}
	}
	return nil
}

func NewHighlightError(err error, code string, details string) *HighlightError {
	return &HighlightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewHighlightErrorWithID(err error, code string, highlightID string, details string) *HighlightError {
	return &HighlightError{
		Err:         err,
		Code:        code,
		HighlightID: highlightID,
		Details:     details,
	}
}

// wrapError classifica erros do motor e do repositório no código de API
func wrapError(err error, highlightID string) error {
	if err == nil {
		return nil
	}

	var highlightErr *HighlightError
	if errors.As(err, &highlightErr) {
		if highlightErr.Code == "" {
			highlightErr.Code = codeFor(highlightErr.Err)
		}
		if highlightErr.HighlightID == "" {
			highlightErr.HighlightID = highlightID
		}
		return err
	}

	return &HighlightError{Err: err, Code: codeFor(err), HighlightID: highlightID}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		return apiErrors.ErrInvalidField
	case errors.Is(err, lifecycle.ErrInvalidTransition), errors.Is(err, ErrHighlightChanged):
		return apiErrors.ErrInvalidTransition
	case errors.Is(err, lifecycle.ErrDuplicateActiveHighlight):
		return apiErrors.ErrDuplicateActiveHighlight
	case errors.Is(err, ErrHighlightNotFound), errors.Is(err, ErrBusinessNotFound):
		return apiErrors.ErrHighlightNotFound
	case errors.Is(err, ErrNotBusinessOwner):
		return apiErrors.ErrNotBusinessOwner
	case errors.Is(err, ErrHighlightCapacityReached):
		return apiErrors.ErrHighlightCapacity
	case errors.Is(err, repository.ErrStoreUnavailable):
		return apiErrors.ErrDatabaseOperation
	}
	return apiErrors.ErrInternalServer
}
