// Package trunks contiene los casos de uso CRUD del inventario de troncales:
// NSOTrunk, VNOTrunk, Customer, TrunkMapping y DID.
package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// ChangeNotifier recibe un aviso después de cada commit que modifica el inventario.
// Lo implementa la caché del dashboard para invalidar por versión.
type ChangeNotifier interface {
	InventoryChanged(ctx context.Context)
}

// unitOfWork comparte el TxRunner y el notificador entre los casos de uso.
type unitOfWork struct {
	tx       repository.TxRunner
	notifier ChangeNotifier
}

func (u unitOfWork) read(ctx context.Context, fn func(r repository.Repos) error) error {
	return u.tx.Run(ctx, fn)
}

// write ejecuta fn en una transacción y, tras el commit, avisa al notificador.
func (u unitOfWork) write(ctx context.Context, fn func(r repository.Repos) error) error {
	if err := u.tx.Run(ctx, fn); err != nil {
		return err
	}
	if u.notifier != nil {
		u.notifier.InventoryChanged(ctx)
	}
	return nil
}
