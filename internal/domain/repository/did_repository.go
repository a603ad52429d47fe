package repository

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// DIDRepository define el puerto de persistencia para DIDs.
type DIDRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, v *entity.DID) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.DID, error)
	List(ctx context.Context) ([]*entity.DID, error)
	Update(ctx context.Context, v *entity.DID) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
