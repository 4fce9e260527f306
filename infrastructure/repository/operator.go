package repository

import (
	"context"

	"github.com/vfg2006/ventas-api/internal/config"
	"github.com/vfg2006/ventas-api/internal/domain"
)

//go:generate mockgen -source=operator.go -destination=mocks/operator.go -package=mocks

type OperatorRepository interface {
	GetOperatorByEmail(ctx context.Context, email string) (*domain.Operator, error)
}

// operatorRepository guarda las credenciales de operador leidas de la configuracion.
type operatorRepository struct {
	operators map[string]domain.Operator
}

func NewOperatorRepository(operators ...config.Operator) OperatorRepository {
	repo := &operatorRepository{
		operators: make(map[string]domain.Operator, len(operators)),
	}

	for _, op := range operators {
		if op.Email == "" {
			continue
		}
		repo.operators[op.Email] = domain.Operator{
			Email:    op.Email,
			Password: op.Password,
		}
	}

	return repo
}

func (r *operatorRepository) GetOperatorByEmail(_ context.Context, email string) (*domain.Operator, error) {
	op, ok := r.operators[email]
	if !ok {
		return nil, nil
	}

	return &op, nil
}
