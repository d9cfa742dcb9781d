package repository

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrStoreUnavailable classifica falhas de infraestrutura do banco
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrHoldingHighlightExists é retornado quando o índice único de destaque
	// em andamento por empresa é violado
	ErrHoldingHighlightExists = errors.New("business already holds a highlight")
)

// StoreError envolve um erro do banco mantendo a operação que falhou.
// errors.Is reconhece tanto ErrStoreUnavailable quanto o erro original.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.Err}
}

func storeError(err error, op string) error {
	return &StoreError{Op: op, Err: pkgerrors.WithStack(err)}
}
