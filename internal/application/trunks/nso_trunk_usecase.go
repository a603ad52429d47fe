package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// NSOTrunkUseCase casos de uso CRUD para troncales NSO.
type NSOTrunkUseCase struct {
	uow unitOfWork
}

// NewNSOTrunkUseCase construye el caso de uso. notifier puede ser nil.
func NewNSOTrunkUseCase(tx repository.TxRunner, notifier ChangeNotifier) *NSOTrunkUseCase {
	return &NSOTrunkUseCase{uow: unitOfWork{tx: tx, notifier: notifier}}
}

// List devuelve todos los NSOTrunk ordenados por id.
func (uc *NSOTrunkUseCase) List(ctx context.Context) ([]dto.NSOTrunkResponse, error) {
	var out []dto.NSOTrunkResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		list, err := r.NSOTrunks.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.NSOTrunkResponse, 0, len(list))
		for _, t := range list {
			out = append(out, toNSOTrunkResponse(t))
		}
		return nil
	})
	return out, err
}

// GetByID devuelve ErrNotFound si no existe.
func (uc *NSOTrunkUseCase) GetByID(ctx context.Context, id int64) (*dto.NSOTrunkResponse, error) {
	var out *dto.NSOTrunkResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		t, err := r.NSOTrunks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		resp := toNSOTrunkResponse(t)
		out = &resp
		return nil
	})
	return out, err
}

// Create valida e inserta; status por defecto "Active".
func (uc *NSOTrunkUseCase) Create(ctx context.Context, in dto.NSOTrunkRequest) (int64, error) {
	f, err := validateTrunk(in)
	if err != nil {
		return 0, err
	}
	trunk := &entity.NSOTrunk{
		ServiceID:   f.serviceID,
		PilotNumber: f.pilotNumber,
		Channels:    f.channels,
		AreaCode:    f.areaCode,
		Status:      optionalString(in.Status, entity.DefaultTrunkStatus),
	}
	err = uc.uow.write(ctx, func(r repository.Repos) error {
		return r.NSOTrunks.Create(ctx, trunk)
	})
	if err != nil {
		return 0, err
	}
	return trunk.ID, nil
}

// Update reemplaza los campos del trunk. Sin status se conserva el actual.
func (uc *NSOTrunkUseCase) Update(ctx context.Context, id int64, in dto.NSOTrunkRequest) error {
	f, err := validateTrunk(in)
	if err != nil {
		return err
	}
	return uc.uow.write(ctx, func(r repository.Repos) error {
		trunk, err := r.NSOTrunks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if trunk == nil {
			return domain.ErrNotFound
		}
		trunk.ServiceID = f.serviceID
		trunk.PilotNumber = f.pilotNumber
		trunk.Channels = f.channels
		trunk.AreaCode = f.areaCode
		trunk.Status = optionalString(in.Status, trunk.Status)
		return r.NSOTrunks.Update(ctx, trunk)
	})
}

// Delete borra el trunk. Las asignaciones que lo referencian quedan colgando.
func (uc *NSOTrunkUseCase) Delete(ctx context.Context, id int64) error {
	return uc.uow.write(ctx, func(r repository.Repos) error {
		trunk, err := r.NSOTrunks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if trunk == nil {
			return domain.ErrNotFound
		}
		return r.NSOTrunks.Delete(ctx, id)
	})
}

func toNSOTrunkResponse(t *entity.NSOTrunk) dto.NSOTrunkResponse {
	return dto.NSOTrunkResponse{
		ID:          t.ID,
		ServiceID:   t.ServiceID,
		PilotNumber: t.PilotNumber,
		Channels:    t.Channels,
		AreaCode:    t.AreaCode,
		Status:      t.Status,
	}
}
