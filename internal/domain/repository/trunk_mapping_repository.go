package repository

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// TrunkMappingRepository define el puerto de persistencia para asignaciones NSO→VNO.
type TrunkMappingRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, v *entity.TrunkMapping) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.TrunkMapping, error)
	List(ctx context.Context) ([]*entity.TrunkMapping, error)
	Update(ctx context.Context, v *entity.TrunkMapping) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
