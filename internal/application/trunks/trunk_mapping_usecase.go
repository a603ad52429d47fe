package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// TrunkMappingUseCase casos de uso CRUD para asignaciones de canales NSO→VNO.
//
// No valida que los trunks referenciados existan ni que la suma de asignaciones
// quepa en la capacidad del NSOTrunk: la sobreasignación se refleja en el dashboard
// como remainingChannels negativo.
type TrunkMappingUseCase struct {
	uow unitOfWork
}

// NewTrunkMappingUseCase construye el caso de uso.
func NewTrunkMappingUseCase(tx repository.TxRunner, notifier ChangeNotifier) *TrunkMappingUseCase {
	return &TrunkMappingUseCase{uow: unitOfWork{tx: tx, notifier: notifier}}
}

func (uc *TrunkMappingUseCase) List(ctx context.Context) ([]dto.TrunkMappingResponse, error) {
	var out []dto.TrunkMappingResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		list, err := r.Mappings.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.TrunkMappingResponse, 0, len(list))
		for _, m := range list {
			out = append(out, toTrunkMappingResponse(m))
		}
		return nil
	})
	return out, err
}

func (uc *TrunkMappingUseCase) GetByID(ctx context.Context, id int64) (*dto.TrunkMappingResponse, error) {
	var out *dto.TrunkMappingResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		m, err := r.Mappings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		resp := toTrunkMappingResponse(m)
		out = &resp
		return nil
	})
	return out, err
}

func (uc *TrunkMappingUseCase) Create(ctx context.Context, in dto.TrunkMappingRequest) (int64, error) {
	nsoID, vnoID, allocated, err := validateMapping(in)
	if err != nil {
		return 0, err
	}
	mapping := &entity.TrunkMapping{
		NSOTrunkID:        nsoID,
		VNOTrunkID:        vnoID,
		AllocatedChannels: allocated,
	}
	err = uc.uow.write(ctx, func(r repository.Repos) error {
		return r.Mappings.Create(ctx, mapping)
	})
	if err != nil {
		return 0, err
	}
	return mapping.ID, nil
}

func (uc *TrunkMappingUseCase) Update(ctx context.Context, id int64, in dto.TrunkMappingRequest) error {
	nsoID, vnoID, allocated, err := validateMapping(in)
	if err != nil {
		return err
	}
	return uc.uow.write(ctx, func(r repository.Repos) error {
		mapping, err := r.Mappings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if mapping == nil {
			return domain.ErrNotFound
		}
		mapping.NSOTrunkID = nsoID
		mapping.VNOTrunkID = vnoID
		mapping.AllocatedChannels = allocated
		return r.Mappings.Update(ctx, mapping)
	})
}

func (uc *TrunkMappingUseCase) Delete(ctx context.Context, id int64) error {
	return uc.uow.write(ctx, func(r repository.Repos) error {
		mapping, err := r.Mappings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if mapping == nil {
			return domain.ErrNotFound
		}
		return r.Mappings.Delete(ctx, id)
	})
}

func toTrunkMappingResponse(m *entity.TrunkMapping) dto.TrunkMappingResponse {
	return dto.TrunkMappingResponse{
		ID:                m.ID,
		NSOTrunkID:        m.NSOTrunkID,
		VNOTrunkID:        m.VNOTrunkID,
		AllocatedChannels: m.AllocatedChannels,
	}
}
