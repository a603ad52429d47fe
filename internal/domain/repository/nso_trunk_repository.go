package repository

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// NSOTrunkRepository define el puerto de persistencia para trunks NSO.
type NSOTrunkRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, v *entity.NSOTrunk) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.NSOTrunk, error)
	List(ctx context.Context) ([]*entity.NSOTrunk, error)
	Update(ctx context.Context, v *entity.NSOTrunk) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
