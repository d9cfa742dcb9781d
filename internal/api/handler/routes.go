package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/guia-local-api/internal/api/handler/router"
	"github.com/vfg2006/guia-local-api/internal/usecases/highlighting"
	"github.com/vfg2006/guia-local-api/internal/usecases/ranking"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

// PublicRoutes são as rotas liberadas sem token
func PublicRoutes() []middleware.PublicRoute {
	return []middleware.PublicRoute{
		{Method: http.MethodGet, Path: "/healthcheck"},
		{Method: http.MethodGet, Path: "/metrics"},
		{Method: http.MethodGet, Path: "/v1/businesses"},
		{Method: http.MethodGet, Path: "/v1/highlights/active"},
	}
}

func Healthcheck(checks map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

func Metrics(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}

func Businesses(rankingService ranking.RankingService, highlightService highlighting.HighlightService, today Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses",
			Method:  http.MethodGet,
			Handler: ListBusinesses(rankingService, today),
		},
		{
			Path:        "/v1/businesses/:id/highlight",
			Method:      http.MethodGet,
			Handler:     GetBusinessHighlight(highlightService),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/v1/businesses/:id/highlight-requests",
			Method:      http.MethodPost,
			Handler:     RequestHighlight(highlightService, today),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}

func Highlights(service highlighting.HighlightService, today Clock) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly()}

	return []router.Route{
		{
			Path:    "/v1/highlights/active",
			Method:  http.MethodGet,
			Handler: ListActiveHighlights(service, today),
		},
		{
			Path:        "/v1/highlights",
			Method:      http.MethodGet,
			Handler:     ListHighlights(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/stats",
			Method:      http.MethodGet,
			Handler:     GetHighlightStats(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights",
			Method:      http.MethodPost,
			Handler:     CreateHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id",
			Method:      http.MethodPut,
			Handler:     UpdateHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id/pause",
			Method:      http.MethodPost,
			Handler:     PauseHighlight(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/highlights/:id/resume",
			Method:      http.MethodPost,
			Handler:     ResumeHighlight(service),
			Middlewares: adminOnly,
		},
	}
}

func HighlightSettings(service highlighting.HighlightService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/highlight-settings",
			Method:      http.MethodGet,
			Handler:     GetHighlightSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/highlight-settings",
			Method:      http.MethodPut,
			Handler:     UpdateHighlightSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(sweeper HighlightSweeper, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/highlight-expiration/run",
			Method:      http.MethodPost,
			Handler:     RunHighlightExpiration(sweeper, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(sweeper),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
