package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/log"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

// HighlightSweeper é a parte do serviço de expiração usada pelos handlers
type HighlightSweeper interface {
	RunNow(ctx context.Context, date *time.Time) (*domain.SweepResult, error)
	GetStatus() map[string]any
}

// RunHighlightExpiration executa a expiração de destaques de forma síncrona.
// ?date=YYYY-MM-DD permite simular outro dia.
func RunHighlightExpiration(sweeper HighlightSweeper, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunHighlightExpiration")

		date, err := utils.ParseDateIn(r.URL.Query().Get("date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", map[string]string{"field": "date"})
			return
		}

		result, err := sweeper.RunNow(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro na expiração manual de destaques")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(sweeper HighlightSweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"highlight-expiration": sweeper.GetStatus(),
		})
	}
}
