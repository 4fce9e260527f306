package domain

// Venta es un registro de la tabla ventas.
type Venta struct {
	ID      int    `json:"id"`
	Fecha   string `json:"fecha"`
	Tienda  string `json:"tienda"`
	Importe int    `json:"importe"`
}
