package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrAccessDenied = errors.New("acceso denegado")
	ErrForbidden    = errors.New("no autorizado")

	ErrInvalidToken = errors.New("token invalido")
	// ErrExpiredToken tambien satisface errors.Is(err, ErrInvalidToken).
	ErrExpiredToken = fmt.Errorf("%w: expirado", ErrInvalidToken)

	ErrMissingEmailClaim        = errors.New("el token debe incluir el email del operador")
	ErrUnsupportedSigningMethod = errors.New("metodo de firma no soportado")
)

// IsAuthenticationError indica si err corresponde a un token invalido o expirado.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
