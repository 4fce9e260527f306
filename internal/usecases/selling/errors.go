package selling

import "errors"

var (
	ErrVentaNotFound  = errors.New("venta no encontrada")
	ErrTiendaNotFound = errors.New("tienda sin ventas")
)
