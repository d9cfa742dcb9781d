package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/guia-local-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica uma dependência externa (banco, redis)
type Pinger func(ctx context.Context) error

func HealthcheckHandler(checks map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warnf("Healthcheck falhou para %s", name)
				results[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "up"
		}

		writeJSON(w, r, status, map[string]any{
			"time":   time.Now().Format(time.RFC3339),
			"checks": results,
		})
	})
}
