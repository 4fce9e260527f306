package domain

import "github.com/golang-jwt/jwt/v5"

// Operator es una credencial habilitada para usar la API.
type Operator struct {
	Email    string
	Password string
}

// Claims es el contenido firmado de un token de operador.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
