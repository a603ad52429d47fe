package trunks

import (
	"context"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	uow unitOfWork
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx repository.TxRunner, notifier ChangeNotifier) *CustomerUseCase {
	return &CustomerUseCase{uow: unitOfWork{tx: tx, notifier: notifier}}
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	var out []dto.CustomerResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		list, err := r.Customers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			out = append(out, toCustomerResponse(c))
		}
		return nil
	})
	return out, err
}

// GetByID obtiene un cliente por id.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	var out *dto.CustomerResponse
	err := uc.uow.read(ctx, func(r repository.Repos) error {
		c, err := r.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		resp := toCustomerResponse(c)
		out = &resp
		return nil
	})
	return out, err
}

// Create crea un nuevo cliente. ErrDuplicate si el email ya existe.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (int64, error) {
	name, email, err := validateCustomer(in)
	if err != nil {
		return 0, err
	}
	customer := &entity.Customer{
		Name:  name,
		Email: email,
		Phone: normalizePhone(in.Phone),
	}
	err = uc.uow.write(ctx, func(r repository.Repos) error {
		return r.Customers.Create(ctx, customer)
	})
	if err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// Update reemplaza nombre, email y teléfono (teléfono ausente lo borra).
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	name, email, err := validateCustomer(in)
	if err != nil {
		return err
	}
	return uc.uow.write(ctx, func(r repository.Repos) error {
		customer, err := r.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		customer.Name = name
		customer.Email = email
		customer.Phone = normalizePhone(in.Phone)
		return r.Customers.Update(ctx, customer)
	})
}

// Delete borra el cliente. Sus VNOTrunk no se tocan y conservan el customer_id.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.uow.write(ctx, func(r repository.Repos) error {
		customer, err := r.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		return r.Customers.Delete(ctx, id)
	})
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
