package dto

// NSOTrunkRequest entrada de creación/actualización de un NSOTrunk.
// Punteros para distinguir campo ausente de valor cero.
type NSOTrunkRequest struct {
	ServiceID   *string `json:"serviceId"`
	PilotNumber *string `json:"pilotNumber"`
	Channels    *int    `json:"channels"`
	AreaCode    *string `json:"areaCode"`
	Status      *string `json:"status"`
}

// NSOTrunkResponse salida de un NSOTrunk.
type NSOTrunkResponse struct {
	ID          int64  `json:"id"`
	ServiceID   string `json:"serviceId"`
	PilotNumber string `json:"pilotNumber"`
	Channels    int    `json:"channels"`
	AreaCode    string `json:"areaCode"`
	Status      string `json:"status"`
}

// VNOTrunkRequest igual que NSOTrunkRequest más el cliente asignado (null o ausente = sin asignar).
type VNOTrunkRequest struct {
	NSOTrunkRequest
	CustomerID *int64 `json:"customerId"`
}

// VNOTrunkResponse salida de un VNOTrunk.
type VNOTrunkResponse struct {
	ID          int64  `json:"id"`
	ServiceID   string `json:"serviceId"`
	PilotNumber string `json:"pilotNumber"`
	Channels    int    `json:"channels"`
	AreaCode    string `json:"areaCode"`
	Status      string `json:"status"`
	CustomerID  *int64 `json:"customerId"`
}
