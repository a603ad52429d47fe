package entity

import "time"

// Tipos de trunk a los que puede apuntar un DID.
const (
	TrunkTypeNSO = "NSO"
	TrunkTypeVNO = "VNO"
)

// DefaultDIDStatus estado de un DID recién creado.
const DefaultDIDStatus = "Available"

// DID número de marcación directa entrante.
//
// TrunkID + TrunkType es una referencia por valor, sin integridad referencial:
// el trunk puede no existir.
type DID struct {
	ID        int64
	DIDNumber string
	TrunkID   int64
	TrunkType string
	Status    string
	CreatedAt time.Time
}

// ValidTrunkType indica si t es NSO o VNO.
func ValidTrunkType(t string) bool {
	return t == TrunkTypeNSO || t == TrunkTypeVNO
}
