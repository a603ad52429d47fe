package repository

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// VNOTrunkRepository define el puerto de persistencia para trunks VNO.
type VNOTrunkRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, v *entity.VNOTrunk) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.VNOTrunk, error)
	List(ctx context.Context) ([]*entity.VNOTrunk, error)
	Update(ctx context.Context, v *entity.VNOTrunk) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
