package dto

// TrunkMappingRequest entrada de creación/actualización de una asignación NSO→VNO.
type TrunkMappingRequest struct {
	NSOTrunkID        *int64 `json:"nsoTrunkId"`
	VNOTrunkID        *int64 `json:"vnoTrunkId"`
	AllocatedChannels *int   `json:"allocatedChannels"`
}

// TrunkMappingResponse salida de una asignación.
type TrunkMappingResponse struct {
	ID                int64 `json:"id"`
	NSOTrunkID        int64 `json:"nsoTrunkId"`
	VNOTrunkID        int64 `json:"vnoTrunkId"`
	AllocatedChannels int   `json:"allocatedChannels"`
}
