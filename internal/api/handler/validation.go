package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ventas-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores usan el nombre del campo tal como llega en el JSON o en la query
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// FieldError describe una restriccion de entrada no cumplida
type FieldError struct {
	Campo     string `json:"campo"`
	Regla     string `json:"regla"`
	Parametro string `json:"parametro,omitempty"`
}

// VentaIDParam es el id de la ruta en GET /ventas/:id
type VentaIDParam struct {
	ID int `param:"id" validate:"min=1,max=1000"`
}

type TiendaQuery struct {
	Tienda *string `query:"tienda" validate:"required,min=4,max=20"`
}

// VentaRequest es el cuerpo de POST y PUT. El id, si llega, se ignora.
type VentaRequest struct {
	ID      *int    `json:"id,omitempty"`
	Fecha   *string `json:"fecha" validate:"required"`
	Tienda  *string `json:"tienda" validate:"required,min=4,max=10"`
	Importe *int    `json:"importe" validate:"required"`
}

type LoginRequest struct {
	Email *string `json:"email" validate:"required"`
	Clave *string `json:"clave" validate:"required"`
}

// decodeAndValidate decodifica el cuerpo en dst y aplica sus reglas de validacion.
// Ante cualquier falla escribe un 422 y devuelve false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeValidationError(w, []FieldError{{Campo: "body", Regla: "json", Parametro: errors.Cause(err).Error()}})
		return false
	}

	return validateStruct(w, dst)
}

func validateStruct(w http.ResponseWriter, s any) bool {
	err := validate.Struct(s)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		writeValidationError(w, []FieldError{{Campo: "body", Regla: "invalido", Parametro: err.Error()}})
		return false
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Campo:     fe.Field(),
			Regla:     fe.Tag(),
			Parametro: fe.Param(),
		})
	}

	writeValidationError(w, details)
	return false
}

// pathID lee :id como entero. Un valor no numerico responde 422.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		writeValidationError(w, []FieldError{{Campo: "id", Regla: "int", Parametro: raw}})
		return 0, false
	}

	return id, true
}

func writeValidationError(w http.ResponseWriter, details []FieldError) {
	apiErrors.WriteError(w, apiErrors.ErrValidation, "Error de validacion", details)
}
