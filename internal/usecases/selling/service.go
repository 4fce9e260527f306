package selling

import (
	"context"

	"github.com/vfg2006/ventas-api/infrastructure/repository"
	"github.com/vfg2006/ventas-api/internal/domain"
)

type Seller interface {
	ListVentas(ctx context.Context) ([]*domain.Venta, error)
	GetVenta(ctx context.Context, id int) (*domain.Venta, error)
	ListVentasByTienda(ctx context.Context, tienda string) ([]*domain.Venta, error)
	CreateVenta(ctx context.Context, venta *domain.Venta) (*domain.Venta, error)
	UpdateVenta(ctx context.Context, id int, venta *domain.Venta) error
	DeleteVenta(ctx context.Context, id int) error
}

type Service struct {
	ventaRepo repository.VentaRepository
}

func NewService(ventaRepo repository.VentaRepository) Seller {
	return &Service{
		ventaRepo: ventaRepo,
	}
}

func (s *Service) ListVentas(ctx context.Context) ([]*domain.Venta, error) {
	return s.ventaRepo.ListVentas(ctx)
}

func (s *Service) GetVenta(ctx context.Context, id int) (*domain.Venta, error) {
	venta, err := s.ventaRepo.GetVentaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if venta == nil {
		return nil, ErrVentaNotFound
	}

	return venta, nil
}

// ListVentasByTienda devuelve ErrTiendaNotFound cuando la tienda no tiene ventas.
func (s *Service) ListVentasByTienda(ctx context.Context, tienda string) ([]*domain.Venta, error) {
	ventas, err := s.ventaRepo.ListVentasByTienda(ctx, tienda)
	if err != nil {
		return nil, err
	}

	if len(ventas) == 0 {
		return nil, ErrTiendaNotFound
	}

	return ventas, nil
}

func (s *Service) CreateVenta(ctx context.Context, venta *domain.Venta) (*domain.Venta, error) {
	return s.ventaRepo.CreateVenta(ctx, &domain.Venta{
		Fecha:   venta.Fecha,
		Tienda:  venta.Tienda,
		Importe: venta.Importe,
	})
}

// UpdateVenta reemplaza siempre los tres campos; no hay actualizacion parcial.
func (s *Service) UpdateVenta(ctx context.Context, id int, venta *domain.Venta) error {
	found, err := s.ventaRepo.UpdateVenta(ctx, &domain.Venta{
		ID:      id,
		Fecha:   venta.Fecha,
		Tienda:  venta.Tienda,
		Importe: venta.Importe,
	})
	if err != nil {
		return err
	}

	if !found {
		return ErrVentaNotFound
	}

	return nil
}

func (s *Service) DeleteVenta(ctx context.Context, id int) error {
	found, err := s.ventaRepo.DeleteVenta(ctx, id)
	if err != nil {
		return err
	}

	if !found {
		return ErrVentaNotFound
	}

	return nil
}
