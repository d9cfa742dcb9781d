package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrMissingToken          = "AUTH_001" // Token não informado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidField        = "VAL_004" // Campo com valor inválido

	// Erros de rota
	ErrNotFound         = "RT_001" // Rota não encontrada
	ErrMethodNotAllowed = "RT_002" // Método não permitido

	// Erros de destaque
	ErrInvalidTransition        = "HL_001" // Mudança de status não permitida
	ErrDuplicateActiveHighlight = "HL_002" // Empresa já possui destaque em andamento
	ErrHighlightNotFound        = "HL_003" // Destaque ou empresa não encontrado
	ErrNotBusinessOwner         = "HL_004" // Usuário não é dono da empresa
	ErrHighlightCapacity        = "HL_005" // Limite de destaques ativos atingido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:             http.StatusUnauthorized,
	ErrInvalidToken:             http.StatusUnauthorized,
	ErrExpiredToken:             http.StatusUnauthorized,
	ErrInsufficientPrivilege:    http.StatusForbidden,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrMissingRequiredData:      http.StatusBadRequest,
	ErrInvalidFormat:            http.StatusBadRequest,
	ErrInvalidField:             http.StatusBadRequest,
	ErrNotFound:                 http.StatusNotFound,
	ErrMethodNotAllowed:         http.StatusMethodNotAllowed,
	ErrInvalidTransition:        http.StatusConflict,
	ErrDuplicateActiveHighlight: http.StatusConflict,
	ErrHighlightNotFound:        http.StatusNotFound,
	ErrNotBusinessOwner:         http.StatusForbidden,
	ErrHighlightCapacity:        http.StatusConflict,
	ErrInternalServer:           http.StatusInternalServerError,
	ErrDatabaseOperation:        http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// CodedError é implementado pelos erros dos casos de uso que já sabem o
// código de API correspondente
type CodedError interface {
	error
	ErrorCode() string
}

// DetailedError expõe detalhes estruturados para o corpo da resposta
type DetailedError interface {
	ErrorDetails() any
}

// StatusFor retorna o status HTTP do código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError escreve a resposta a partir de um erro Go. Erros que não
// carregam código usam fallbackCode.
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string) {
	apiErr := FromError(err, fallbackCode)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	apiErr := APIError{
		Code:    code,
		Message: err.Error(),
	}

	var coded CodedError
	if errors.As(err, &coded) && coded.ErrorCode() != "" {
		apiErr.Code = coded.ErrorCode()
	}

	var detailed DetailedError
	if errors.As(err, &detailed) {
		apiErr.Details = detailed.ErrorDetails()
	}

	// Falhas internas não expõem a mensagem original
	if StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		apiErr.Message = "Erro interno ao processar a requisição"
	}

	return apiErr
}
