package repository

import "context"

// Repos repositorios atados a una misma unidad de trabajo.
type Repos struct {
	NSOTrunks NSOTrunkRepository
	VNOTrunks VNOTrunkRepository
	Customers CustomerRepository
	Mappings  TrunkMappingRepository
	DIDs      DIDRepository
}

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso. Una llamada por petición.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
