package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/log"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = utils.NewValidator()

const maxBodyBytes = 1 << 20

// Clock retorna o dia corrente usado pelo ranking e pelas solicitações
type Clock func() domain.Date

// NewClock cria um Clock no fuso informado
func NewClock(loc *time.Location) Clock {
	return func() domain.Date {
		return domain.DateOf(utils.StartOfDay(time.Now(), loc))
	}
}

// decodeJSONBody lê o corpo JSON e aplica as regras de validação do DTO.
// Em caso de erro já escreve a resposta e retorna false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, ok := readBody(w, r)
	if !ok {
		return false
	}
	if len(body) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
		return false
	}
	return decodeJSON(w, r, body, dst)
}

// readBody lê o corpo até o limite, ignorando espaços. Não depende de
// Content-Length, que vem -1 em requisições chunked.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		return nil, true
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
		return nil, false
	}
	return bytes.TrimSpace(body), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, body []byte, dst any) bool {
	if err := json.Unmarshal(body, dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("JSON inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido: "+err.Error(), nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			apiErrors.WriteError(w, apiErrors.ErrInvalidField, "Campo inválido: "+fe.Field(), map[string]string{
				"field":  fe.Field(),
				"reason": "falhou na regra " + fe.Tag(),
			})
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError escreve o erro vindo de um caso de uso, registrando as
// falhas internas
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	fallback := apiErrors.ErrInternalServer
	if errors.Is(err, repository.ErrStoreUnavailable) {
		fallback = apiErrors.ErrDatabaseOperation
	}

	apiErr := apiErrors.FromError(err, fallback)
	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error(msg)
	} else {
		logger.Warn(msg)
	}
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

func actorFrom(r *http.Request) (domain.Actor, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return domain.Actor{}, false
	}
	return claims.Actor(), true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
