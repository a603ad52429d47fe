package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// DIDUseCase casos de uso CRUD para números DID.
type DIDUseCase struct {
	uow unitOfWork
}

// NewDIDUseCase construye el caso de uso.
func NewDIDUseCase(tx repository.TxRunner, notifier ChangeNotifier) *DIDUseCase {
	return &DIDUseCase{uow: unitOfWork{tx: tx, notifier: notifier}}
}

func (uc *DIDUseCase) List(ctx context.Context) ([]dto.DIDResponse, error) {
	var out []dto.DIDResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		list, err := r.DIDs.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.DIDResponse, 0, len(list))
		for _, d := range list {
			out = append(out, toDIDResponse(d))
		}
		return nil
	})
	return out, err
}

func (uc *DIDUseCase) GetByID(ctx context.Context, id int64) (*dto.DIDResponse, error) {
	var out *dto.DIDResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		d, err := r.DIDs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		resp := toDIDResponse(d)
		out = &resp
		return nil
	})
	return out, err
}

// Create inserta el DID con status "Available" por defecto. El trunk referenciado no se verifica.
func (uc *DIDUseCase) Create(ctx context.Context, in dto.DIDRequest) (int64, error) {
	number, trunkID, trunkType, err := validateDID(in)
	if err != nil {
		return 0, err
	}
	did := &entity.DID{
		DIDNumber: number,
		TrunkID:   trunkID,
		TrunkType: trunkType,
		Status:    optionalString(in.Status, entity.DefaultDIDStatus),
	}
	err = uc.uow.write(ctx, func(r repository.Repos) error {
		return r.DIDs.Create(ctx, did)
	})
	if err != nil {
		return 0, err
	}
	return did.ID, nil
}

func (uc *DIDUseCase) Update(ctx context.Context, id int64, in dto.DIDRequest) error {
	number, trunkID, trunkType, err := validateDID(in)
	if err != nil {
		return err
	}
	return uc.uow.write(ctx, func(r repository.Repos) error {
		did, err := r.DIDs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if did == nil {
			return domain.ErrNotFound
		}
		did.DIDNumber = number
		did.TrunkID = trunkID
		did.TrunkType = trunkType
		did.Status = optionalString(in.Status, did.Status)
		return r.DIDs.Update(ctx, did)
	})
}

func (uc *DIDUseCase) Delete(ctx context.Context, id int64) error {
	return uc.uow.write(ctx, func(r repository.Repos) error {
		did, err := r.DIDs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if did == nil {
			return domain.ErrNotFound
		}
		return r.DIDs.Delete(ctx, id)
	})
}

func toDIDResponse(d *entity.DID) dto.DIDResponse {
	return dto.DIDResponse{
		ID:        d.ID,
		DIDNumber: d.DIDNumber,
		TrunkID:   d.TrunkID,
		TrunkType: d.TrunkType,
		Status:    d.Status,
	}
}
