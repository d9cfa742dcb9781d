package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/ranking"
)

// ListBusinesses retorna as empresas aprovadas na ordem do ranking de destaques
func ListBusinesses(service ranking.RankingService, today Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.BusinessFilters{
			Category: strings.TrimSpace(query.Get("category")),
			Search:   strings.TrimSpace(query.Get("search")),
		}

		businesses, err := service.ListBusinesses(r.Context(), filters, today())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar empresas")
			return
		}

		writeJSON(w, r, http.StatusOK, businesses)
	}
}
