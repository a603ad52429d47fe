package entity

import "time"

// DefaultTrunkStatus estado asignado cuando no se indica uno al crear un trunk.
const DefaultTrunkStatus = "Active"

// NSOTrunk grupo de troncales provisto por el operador de red, con capacidad fija de canales.
type NSOTrunk struct {
	ID          int64
	ServiceID   string // único
	PilotNumber string
	Channels    int
	AreaCode    string
	Status      string // texto libre
	CreatedAt   time.Time
}
