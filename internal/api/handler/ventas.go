package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ventas-api/internal/domain"
	"github.com/vfg2006/ventas-api/internal/usecases/selling"
	"github.com/vfg2006/ventas-api/pkg/apiErrors"
	"github.com/vfg2006/ventas-api/pkg/log"
	"github.com/vfg2006/ventas-api/pkg/middleware"
)

const (
	msgVentaNoEncontradaGet = "No se encontro ventas con ese ID"
	msgTiendaNoEncontrada   = "No se encontro esa tienda"
	msgVentaNoEncontrada    = "No se encontro la venta con ese ID"
	msgVentaRegistrada      = "Venta Registrada"
	msgVentaActualizada     = "Venta Actualizada"
	msgVentaEliminada       = "Venta Eliminada"
)

func ListVentas(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ventas, err := service.ListVentas(r.Context())
		if err != nil {
			writeDatastoreError(w, r, err, "Error al listar las ventas")
			return
		}

		if claims, ok := middleware.OperatorFromContext(r.Context()); ok {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_email": claims.Email,
				"total":      len(ventas),
			}).Debug("Listado de ventas")
		}

		writeJSON(w, r, http.StatusOK, ventas)
	}
}

func GetVenta(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if !validateStruct(w, VentaIDParam{ID: id}) {
			return
		}

		venta, err := service.GetVenta(r.Context(), id)
		if errors.Is(err, selling.ErrVentaNotFound) {
			apiErrors.WriteMessage(w, http.StatusNotFound, msgVentaNoEncontradaGet)
			return
		}
		if err != nil {
			writeDatastoreError(w, r, err, "Error al obtener la venta")
			return
		}

		writeJSON(w, r, http.StatusOK, venta)
	}
}

func ListVentasByTienda(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := TiendaQuery{}
		if values := r.URL.Query(); values.Has("tienda") {
			tienda := values.Get("tienda")
			query.Tienda = &tienda
		}

		if !validateStruct(w, query) {
			return
		}

		ventas, err := service.ListVentasByTienda(r.Context(), *query.Tienda)
		if errors.Is(err, selling.ErrTiendaNotFound) {
			apiErrors.WriteMessage(w, http.StatusNotFound, msgTiendaNoEncontrada)
			return
		}
		if err != nil {
			writeDatastoreError(w, r, err, "Error al listar las ventas de la tienda")
			return
		}

		writeJSON(w, r, http.StatusOK, ventas)
	}
}

func CreateVenta(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VentaRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := service.CreateVenta(r.Context(), req.toVenta())
		if err != nil {
			writeDatastoreError(w, r, err, "Error al registrar la venta")
			return
		}

		log.ForContext(r.Context()).WithField("venta_id", created.ID).Info("Venta registrada")
		apiErrors.WriteMessage(w, http.StatusCreated, msgVentaRegistrada)
	}
}

func UpdateVenta(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req VentaRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		err := service.UpdateVenta(r.Context(), id, req.toVenta())
		if errors.Is(err, selling.ErrVentaNotFound) {
			apiErrors.WriteMessage(w, http.StatusNotFound, msgVentaNoEncontrada)
			return
		}
		if err != nil {
			writeDatastoreError(w, r, err, "Error al actualizar la venta")
			return
		}

		apiErrors.WriteMessage(w, http.StatusOK, msgVentaActualizada)
	}
}

func DeleteVenta(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		err := service.DeleteVenta(r.Context(), id)
		if errors.Is(err, selling.ErrVentaNotFound) {
			apiErrors.WriteMessage(w, http.StatusNotFound, msgVentaNoEncontrada)
			return
		}
		if err != nil {
			writeDatastoreError(w, r, err, "Error al eliminar la venta")
			return
		}

		apiErrors.WriteMessage(w, http.StatusOK, msgVentaEliminada)
	}
}

func (req VentaRequest) toVenta() *domain.Venta {
	return &domain.Venta{
		Fecha:   *req.Fecha,
		Tienda:  *req.Tienda,
		Importe: *req.Importe,
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Error al escribir la respuesta")
	}
}

func writeDatastoreError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
