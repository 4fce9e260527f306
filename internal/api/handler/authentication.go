package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ventas-api/internal/usecases/authenticating"
	"github.com/vfg2006/ventas-api/pkg/apiErrors"
	"github.com/vfg2006/ventas-api/pkg/log"
)

const msgAccesoDenegado = "Acceso Denegado"

// Login responde el token como un string JSON sin envolver.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, err := service.LoginOperator(r.Context(), *req.Email, *req.Clave)
		if errors.Is(err, authenticating.ErrAccessDenied) {
			log.ForContext(r.Context()).WithField("user_email", *req.Email).Info("Login rechazado")
			apiErrors.WriteMessage(w, http.StatusNotFound, msgAccesoDenegado)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error al realizar el login")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno al realizar el login", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, token)
	}
}
