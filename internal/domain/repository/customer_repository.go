package repository

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, v *entity.Customer) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, v *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
