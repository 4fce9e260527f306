package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/ventas-api/internal/domain"
	"github.com/vfg2006/ventas-api/internal/usecases/authenticating"
	"github.com/vfg2006/ventas-api/pkg/apiErrors"
	"github.com/vfg2006/ventas-api/pkg/log"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

// OperatorGuard exige un token Bearer valido emitido para un operador habilitado.
// Sin token o con token invalido responde 401; con un email no autorizado, 403.
func OperatorGuard(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Se requiere un token Bearer", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger.WithError(err).Debug("Token rechazado")
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token invalido", nil)
				return
			}

			if err := authService.AuthorizeOperator(r.Context(), claims); err != nil {
				if errors.Is(err, authenticating.ErrForbidden) {
					logger.WithField("user_email", claims.Email).Warn("Acceso de operador no autorizado")
					apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No Autorizado", nil)
					return
				}
				logger.WithError(err).Error("Error al autorizar al operador")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno del servidor", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext devuelve los claims guardados por OperatorGuard.
func OperatorFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyOperator).(*domain.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return strings.TrimSpace(tokenString), true
}
