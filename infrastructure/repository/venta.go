package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ventas-api/infrastructure/database/postgres"
	"github.com/vfg2006/ventas-api/internal/domain"
)

//go:generate mockgen -source=venta.go -destination=mocks/venta.go -package=mocks

const ventasTable = "ventas"

var ventaColumns = []string{"id", "fecha", "tienda", "importe"}

type VentaRepository interface {
	ListVentas(ctx context.Context) ([]*domain.Venta, error)
	GetVentaByID(ctx context.Context, id int) (*domain.Venta, error)
	ListVentasByTienda(ctx context.Context, tienda string) ([]*domain.Venta, error)
	CreateVenta(ctx context.Context, venta *domain.Venta) (*domain.Venta, error)
	UpdateVenta(ctx context.Context, venta *domain.Venta) (bool, error)
	DeleteVenta(ctx context.Context, id int) (bool, error)
}

type ventaRepository struct {
	conn postgres.Conn
}

func NewVentaRepository(conn postgres.Conn) VentaRepository {
	return &ventaRepository{
		conn: conn,
	}
}

func (r *ventaRepository) ListVentas(ctx context.Context) ([]*domain.Venta, error) {
	queryBuilder := squirrel.
		Select(ventaColumns...).
		From(ventasTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryVentas(ctx, queryBuilder)
}

func (r *ventaRepository) GetVentaByID(ctx context.Context, id int) (*domain.Venta, error) {
	query, args, err := squirrel.
		Select(ventaColumns...).
		From(ventasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir la consulta")
	}

	var venta domain.Venta
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&venta.ID,
		&venta.Fecha,
		&venta.Tienda,
		&venta.Importe,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error al buscar la venta %d", id)
	}

	return &venta, nil
}

func (r *ventaRepository) ListVentasByTienda(ctx context.Context, tienda string) ([]*domain.Venta, error) {
	queryBuilder := squirrel.
		Select(ventaColumns...).
		From(ventasTable).
		Where(squirrel.Eq{"tienda": tienda}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryVentas(ctx, queryBuilder)
}

// CreateVenta inserta la venta y le asigna el id generado por la base; cualquier id
// que traiga el llamador se ignora.
func (r *ventaRepository) CreateVenta(ctx context.Context, venta *domain.Venta) (*domain.Venta, error) {
	query, args, err := squirrel.
		Insert(ventasTable).
		Columns("fecha", "tienda", "importe").
		Values(venta.Fecha, venta.Tienda, venta.Importe).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir la consulta")
	}

	created := *venta
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&created.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "error al registrar la venta")
	}

	return &created, nil
}

// UpdateVenta sobrescribe fecha, tienda e importe. Devuelve false si el id no existe.
func (r *ventaRepository) UpdateVenta(ctx context.Context, venta *domain.Venta) (bool, error) {
	query, args, err := squirrel.
		Update(ventasTable).
		Set("fecha", venta.Fecha).
		Set("tienda", venta.Tienda).
		Set("importe", venta.Importe).
		Where(squirrel.Eq{"id": venta.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "error al construir la consulta")
	}

	found, err := r.execAffecting(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "error al actualizar la venta %d", venta.ID)
	}

	return found, nil
}

func (r *ventaRepository) DeleteVenta(ctx context.Context, id int) (bool, error) {
	query, args, err := squirrel.
		Delete(ventasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "error al construir la consulta")
	}

	found, err := r.execAffecting(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "error al eliminar la venta %d", id)
	}

	return found, nil
}

// execAffecting ejecuta query en una transaccion e informa si afecto alguna fila.
func (r *ventaRepository) execAffecting(ctx context.Context, query string, args ...any) (bool, error) {
	var affected int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *ventaRepository) queryVentas(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Venta, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error al construir la consulta")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar ventas")
	}
	defer rows.Close()

	ventas := make([]*domain.Venta, 0)
	for rows.Next() {
		var venta domain.Venta
		if err := rows.Scan(
			&venta.ID,
			&venta.Fecha,
			&venta.Tienda,
			&venta.Importe,
		); err != nil {
			return nil, errors.Wrap(err, "error al leer la venta")
		}
		ventas = append(ventas, &venta)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error al recorrer las ventas")
	}

	return ventas, nil
}
