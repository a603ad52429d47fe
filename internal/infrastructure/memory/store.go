// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en los tests de handlers.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

var (
	_ repository.TxRunner       = (*Store)(nil)
	_ repository.UserRepository = (*UserRepo)(nil)

	_ repository.NSOTrunkRepository     = (*table[entity.NSOTrunk])(nil)
	_ repository.VNOTrunkRepository     = (*table[entity.VNOTrunk])(nil)
	_ repository.CustomerRepository     = (*table[entity.Customer])(nil)
	_ repository.TrunkMappingRepository = (*table[entity.TrunkMapping])(nil)
	_ repository.DIDRepository          = (*table[entity.DID])(nil)
)

type tables struct {
	users     *table[entity.User]
	nsoTrunks *table[entity.NSOTrunk]
	vnoTrunks *table[entity.VNOTrunk]
	customers *table[entity.Customer]
	mappings  *table[entity.TrunkMapping]
	dids      *table[entity.DID]
}

func (t *tables) clone() *tables {
	return &tables{
		users:     t.users.clone(),
		nsoTrunks: t.nsoTrunks.clone(),
		vnoTrunks: t.vnoTrunks.clone(),
		customers: t.customers.clone(),
		mappings:  t.mappings.clone(),
		dids:      t.dids.clone(),
	}
}

func (t *tables) repos() repository.Repos {
	return repository.Repos{
		NSOTrunks: t.nsoTrunks,
		VNOTrunks: t.vnoTrunks,
		Customers: t.customers,
		Mappings:  t.mappings,
		DIDs:      t.dids,
	}
}

// Store base de datos en memoria. Las transacciones se serializan con un mutex
// y trabajan sobre una copia que solo se publica si fn no devuelve error.
type Store struct {
	mu   sync.Mutex
	data *tables
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock crea un store vacío que usa now para created_at.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{data: &tables{
		users: &table[entity.User]{
			rows:     map[int64]*entity.User{},
			id:       func(v *entity.User) *int64 { return &v.ID },
			created:  func(v *entity.User) *time.Time { return &v.CreatedAt },
			copyRow:  func(v *entity.User) *entity.User { c := *v; return &c },
			conflict: func(a, b *entity.User) bool { return a.Username == b.Username },
			now:      now,
		},
		nsoTrunks: &table[entity.NSOTrunk]{
			rows:     map[int64]*entity.NSOTrunk{},
			id:       func(v *entity.NSOTrunk) *int64 { return &v.ID },
			created:  func(v *entity.NSOTrunk) *time.Time { return &v.CreatedAt },
			copyRow:  func(v *entity.NSOTrunk) *entity.NSOTrunk { c := *v; return &c },
			conflict: func(a, b *entity.NSOTrunk) bool { return a.ServiceID == b.ServiceID },
			now:      now,
		},
		vnoTrunks: &table[entity.VNOTrunk]{
			rows:    map[int64]*entity.VNOTrunk{},
			id:      func(v *entity.VNOTrunk) *int64 { return &v.ID },
			created: func(v *entity.VNOTrunk) *time.Time { return &v.CreatedAt },
			copyRow: func(v *entity.VNOTrunk) *entity.VNOTrunk {
				c := *v
				c.CustomerID = copyPtr(v.CustomerID)
				return &c
			},
			conflict: func(a, b *entity.VNOTrunk) bool { return a.ServiceID == b.ServiceID },
			now:      now,
		},
		customers: &table[entity.Customer]{
			rows:    map[int64]*entity.Customer{},
			id:      func(v *entity.Customer) *int64 { return &v.ID },
			created: func(v *entity.Customer) *time.Time { return &v.CreatedAt },
			copyRow: func(v *entity.Customer) *entity.Customer {
				c := *v
				c.Phone = copyPtr(v.Phone)
				return &c
			},
			conflict: func(a, b *entity.Customer) bool { return a.Email == b.Email },
			now:      now,
		},
		mappings: &table[entity.TrunkMapping]{
			rows:    map[int64]*entity.TrunkMapping{},
			id:      func(v *entity.TrunkMapping) *int64 { return &v.ID },
			created: func(v *entity.TrunkMapping) *time.Time { return &v.CreatedAt },
			copyRow: func(v *entity.TrunkMapping) *entity.TrunkMapping { c := *v; return &c },
			now:     now,
		},
		dids: &table[entity.DID]{
			rows:     map[int64]*entity.DID{},
			id:       func(v *entity.DID) *int64 { return &v.ID },
			created:  func(v *entity.DID) *time.Time { return &v.CreatedAt },
			copyRow:  func(v *entity.DID) *entity.DID { c := *v; return &c },
			conflict: func(a, b *entity.DID) bool { return a.DIDNumber == b.DIDNumber },
			now:      now,
		},
	}}
}

// Run ejecuta fn sobre una copia de las tablas y la publica solo si fn termina sin error.
func (s *Store) Run(ctx context.Context, fn func(r repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(work.repos()); err != nil {
		return err
	}
	s.data = work
	return nil
}

// Users devuelve el repositorio de usuarios (fuera de transacción, como en postgres).
func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

// UserRepo adaptador de UserRepository sobre el Store.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.data.users.Create(ctx, user)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.data.users.GetByID(ctx, id)
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users.rows {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// UpdateRole cambia el rol de un usuario existente (no expuesto por HTTP).
func (r *UserRepo) UpdateRole(_ context.Context, id int64, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

// Delete elimina un usuario (no expuesto por HTTP).
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.data.users.Delete(ctx, id)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
