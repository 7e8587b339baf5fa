package handler

import (
	"net/http"

	"github.com/blumenladen/dashboard/internal/api/handler/router"
	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Version cobre as duas variantes do endpoint de atualização
func Version(catalog *stub.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/version",
			Method:  http.MethodPost,
			Handler: UpdateFlowers(catalog),
		},
		{
			Path:    "/update_flowers",
			Method:  http.MethodPost,
			Handler: UpdateFlowers(catalog),
		},
		{
			Path:    "/version",
			Method:  http.MethodGet,
			Handler: GetLastUpdated(catalog),
		},
	}
}

func Flowers(catalog *stub.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/flowers",
			Method:  http.MethodGet,
			Handler: ListFlowers(catalog),
		},
		{
			Path:    "/flowers/*product_id",
			Method:  http.MethodGet,
			Handler: GetFlower(catalog),
		},
	}
}

func Costs(catalog *stub.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/costs/:group_by",
			Method:  http.MethodGet,
			Handler: GetCosts(catalog),
		},
	}
}

func Admin(faults *middleware.FaultInjector) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/faults",
			Method:      http.MethodPost,
			Handler:     SetFaults(faults),
			Middlewares: []func(http.Handler) http.Handler{middleware.LocalOnly()},
		},
	}
}
