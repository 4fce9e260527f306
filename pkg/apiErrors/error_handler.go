package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codigos de error expuestos al cliente
const (
	// Errores de autenticacion
	ErrInvalidToken          = "AUTH_006" // Token invalido o ausente
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Operador no autorizado

	// Errores de validacion
	ErrValidation = "VAL_004" // Restricciones de entrada no cumplidas

	// Errores del servidor
	ErrInternalServer    = "SRV_001" // Error interno
	ErrDatabaseOperation = "SRV_002" // Error en la base de datos
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrValidation:            http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError es el cuerpo estandar de los errores que no son de dominio
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Mensaje es el cuerpo de las respuestas de dominio: {"mensaje": "..."}
type Mensaje struct {
	Mensaje string `json:"mensaje"`
}

// StatusFor devuelve el status HTTP asociado a code; 500 si no se conoce.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteMessage escribe {"mensaje": message} con el status indicado
func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Mensaje{Mensaje: message})
}
