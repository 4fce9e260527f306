package postgres

import (
	"context"

	"github.com/sirupsen/logrus"
)

const createVentasTable = `CREATE TABLE IF NOT EXISTS ventas (
	id      SERIAL PRIMARY KEY,
	fecha   TEXT,
	tienda  TEXT,
	importe INTEGER
)`

// Migrate crea el esquema si todavia no existe. Es idempotente.
func Migrate(ctx context.Context, q Queryer) error {
	if _, err := q.ExecContext(ctx, createVentasTable); err != nil {
		return err
	}

	logrus.Debug("Esquema de ventas verificado")
	return nil
}
