package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/highlighting"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
)

// RequestHighlight registra a solicitação de destaque do dono da empresa
func RequestHighlight(service highlighting.HighlightService, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.HighlightRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		h, err := service.RequestHighlight(r.Context(), actor, pathParam(r, "id"), req, today())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao solicitar destaque")
			return
		}

		writeJSON(w, r, http.StatusCreated, h)
	}
}

// GetBusinessHighlight retorna o destaque em andamento da empresa, ou null
func GetBusinessHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		h, err := service.GetBusinessHighlight(r.Context(), actor, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar destaque da empresa")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

// ListActiveHighlights é a consulta pública dos destaques vigentes
func ListActiveHighlights(service highlighting.HighlightService, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highlights, err := service.ActiveHighlights(r.Context(), today())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar destaques ativos")
			return
		}

		writeJSON(w, r, http.StatusOK, highlights)
	}
}

// ListHighlights lista os destaques para o painel do admin
func ListHighlights(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.HighlightFilters{Search: strings.TrimSpace(query.Get("search"))}

		if raw := strings.TrimSpace(query.Get("status")); raw != "" && raw != "all" {
			status := domain.HighlightStatus(raw)
			if !status.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidField, "Status inválido: "+raw, map[string]string{"field": "status"})
				return
			}
			filters.Status = &status
		}

		highlights, err := service.List(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar destaques")
			return
		}

		writeJSON(w, r, http.StatusOK, highlights)
	}
}

func GetHighlightStats(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas de destaques")
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

// CreateHighlight cria um destaque diretamente pelo admin
func CreateHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := actorFrom(r)

		var input domain.NewHighlightInput
		if !decodeJSONBody(w, r, &input) {
			return
		}

		h, err := service.Create(r.Context(), actor, input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar destaque")
			return
		}

		writeJSON(w, r, http.StatusCreated, h)
	}
}

func UpdateHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var overrides domain.HighlightOverrides
		if !decodeJSONBody(w, r, &overrides) {
			return
		}

		h, err := service.Update(r.Context(), pathParam(r, "id"), &overrides)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

// ApproveHighlight aprova a solicitação. O corpo com ajustes é opcional.
func ApproveHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}

		var overrides *domain.HighlightOverrides
		if len(body) > 0 {
			overrides = &domain.HighlightOverrides{}
			if !decodeJSON(w, r, body, overrides) {
				return
			}
		}

		h, err := service.Approve(r.Context(), pathParam(r, "id"), overrides)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao aprovar destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

func RejectHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RejectHighlightRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		h, err := service.Reject(r.Context(), pathParam(r, "id"), req.Reason)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao rejeitar destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

func PauseHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := service.Pause(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao pausar destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

func ResumeHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := service.Resume(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao reativar destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, h)
	}
}

func DeleteHighlight(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover destaque")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetHighlightSettings(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar configurações de destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	}
}

func UpdateHighlightSettings(service highlighting.HighlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.HighlightSettings
		if !decodeJSONBody(w, r, &settings) {
			return
		}

		updated, err := service.UpdateSettings(r.Context(), &settings)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar configurações de destaque")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}
