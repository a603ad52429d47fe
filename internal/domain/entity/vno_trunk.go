package entity

import "time"

// VNOTrunk troncal revendida a un cliente; sus canales salen de uno o más NSOTrunk vía TrunkMapping.
//
// CustomerID es una referencia débil: borrar el cliente no toca el trunk y el id queda colgando.
type VNOTrunk struct {
	ID          int64
	ServiceID   string
	PilotNumber string
	Channels    int
	AreaCode    string
	Status      string
	CustomerID  *int64 // nil = sin asignar
	CreatedAt   time.Time
}
