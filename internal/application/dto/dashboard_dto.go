package dto

// DashboardStatsDTO respuesta de GET /api/dashboard.
type DashboardStatsDTO struct {
	StatsByAreaCode map[string]AreaStatsDTO `json:"statsByAreaCode"`
	TotalNSOTrunks  int                     `json:"totalNSOTrunks"`
	TotalVNOTrunks  int                     `json:"totalVNOTrunks"`
	TotalDIDs       int                     `json:"totalDIDs"`
}

// AreaStatsDTO utilización de canales de un código de área.
type AreaStatsDTO struct {
	TotalChannels     int     `json:"totalChannels"`
	AllocatedChannels int     `json:"allocatedChannels"`
	RemainingChannels int     `json:"remainingChannels"`
	Utilization       float64 `json:"utilization"` // porcentaje, 1 decimal
}
