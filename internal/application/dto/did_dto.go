package dto

// DIDRequest entrada de creación/actualización de un DID.
type DIDRequest struct {
	DIDNumber *string `json:"didNumber"`
	TrunkID   *int64  `json:"trunkId"`
	TrunkType *string `json:"trunkType"`
	Status    *string `json:"status"`
}

// DIDResponse salida de un DID.
type DIDResponse struct {
	ID        int64  `json:"id"`
	DIDNumber string `json:"didNumber"`
	TrunkID   int64  `json:"trunkId"`
	TrunkType string `json:"trunkType"`
	Status    string `json:"status"`
}
