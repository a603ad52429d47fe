package entity

import "time"

// TrunkMapping asignación de AllocatedChannels canales de un NSOTrunk a un VNOTrunk.
// No se valida que la suma de asignaciones quepa en la capacidad del NSOTrunk.
type TrunkMapping struct {
	ID                int64
	NSOTrunkID        int64
	VNOTrunkID        int64
	AllocatedChannels int
	CreatedAt         time.Time
}
