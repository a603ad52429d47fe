package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// VNOTrunkUseCase casos de uso CRUD para troncales VNO.
// No se comprueba que CustomerID exista.
type VNOTrunkUseCase struct {
	uow unitOfWork
}

// NewVNOTrunkUseCase construye el caso de uso.
func NewVNOTrunkUseCase(tx repository.TxRunner, notifier ChangeNotifier) *VNOTrunkUseCase {
	return &VNOTrunkUseCase{uow: unitOfWork{tx: tx, notifier: notifier}}
}

func (uc *VNOTrunkUseCase) List(ctx context.Context) ([]dto.VNOTrunkResponse, error) {
	var out []dto.VNOTrunkResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		list, err := r.VNOTrunks.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.VNOTrunkResponse, 0, len(list))
		for _, t := range list {
			out = append(out, toVNOTrunkResponse(t))
		}
		return nil
	})
	return out, err
}

func (uc *VNOTrunkUseCase) GetByID(ctx context.Context, id int64) (*dto.VNOTrunkResponse, error) {
	var out *dto.VNOTrunkResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		t, err := r.VNOTrunks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		resp := toVNOTrunkResponse(t)
		out = &resp
		return nil
	})
	return out, err
}

func (uc *VNOTrunkUseCase) Create(ctx context.Context, in dto.VNOTrunkRequest) (int64, error) {
	f, err := validateTrunk(in.NSOTrunkRequest)
	if err != nil {
		return 0, err
	}
	trunk := &entity.VNOTrunk{
		ServiceID:   f.serviceID,
		PilotNumber: f.pilotNumber,
		Channels:    f.channels,
		AreaCode:    f.areaCode,
		Status:      optionalString(in.Status, entity.DefaultTrunkStatus),
		CustomerID:  in.CustomerID,
	}
	err = uc.uow.write(ctx, func(r repository.Repos) error {
		return r.VNOTrunks.Create(ctx, trunk)
	})
	if err != nil {
		return 0, err
	}
	return trunk.ID, nil
}

// Update reemplaza los campos; customerId ausente o null desasigna el cliente.
func (uc *VNOTrunkUseCase) Update(ctx context.Context, id int64, in dto.VNOTrunkRequest) error {
	f, err := validateTrunk(in.NSOTrunkRequest)
	if err != nil {
		return err
	}
	return uc.uow.write(ctx, func(r repository.Repos) error {
		trunk, err := r.VNOTrunks.GetByID(ctx, id)
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
		trunk.CustomerID = in.CustomerID
		return r.VNOTrunks.Update(ctx, trunk)
	})
}

func (uc *VNOTrunkUseCase) Delete(ctx context.Context, id int64) error {
	return uc.uow.write(ctx, func(r repository.Repos) error {
		trunk, err := r.VNOTrunks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if trunk == nil {
			return domain.ErrNotFound
		}
		return r.VNOTrunks.Delete(ctx, id)
	})
}

func toVNOTrunkResponse(t *entity.VNOTrunk) dto.VNOTrunkResponse {
	return dto.VNOTrunkResponse{
		ID:          t.ID,
		ServiceID:   t.ServiceID,
		PilotNumber: t.PilotNumber,
		Channels:    t.Channels,
		AreaCode:    t.AreaCode,
		Status:      t.Status,
		CustomerID:  t.CustomerID,
	}
}
