package handler

import (
	"net/http"

	"github.com/vfg2006/ventas-api/internal/api/handler/router"
	"github.com/vfg2006/ventas-api/internal/usecases/authenticating"
	"github.com/vfg2006/ventas-api/internal/usecases/selling"
	"github.com/vfg2006/ventas-api/pkg/middleware"
)

func Root(appName string) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Home(appName),
		},
	}
}

func Healthcheck(checker HealthChecker, version string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker, version),
		},
	}
}

// Ventas arma las rutas de ventas. El listado completo siempre exige operador;
// las escrituras solo cuando protectWrites es true.
func Ventas(service selling.Seller, authenticator authenticating.Authenticator, protectWrites bool) []router.Route {
	guard := []func(http.Handler) http.Handler{middleware.OperatorGuard(authenticator)}

	var writeGuard []func(http.Handler) http.Handler
	if protectWrites {
		writeGuard = guard
	}

	return []router.Route{
		{
			Path:        "/ventas",
			Method:      http.MethodGet,
			Handler:     ListVentas(service),
			Middlewares: guard,
		},
		{
			Path:    "/ventas/:id",
			Method:  http.MethodGet,
			Handler: GetVenta(service),
		},
		{
			Path:    "/ventas/",
			Method:  http.MethodGet,
			Handler: ListVentasByTienda(service),
		},
		{
			Path:        "/ventas",
			Method:      http.MethodPost,
			Handler:     CreateVenta(service),
			Middlewares: writeGuard,
		},
		{
			Path:        "/ventas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVenta(service),
			Middlewares: writeGuard,
		},
		{
			Path:        "/ventas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteVenta(service),
			Middlewares: writeGuard,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}
