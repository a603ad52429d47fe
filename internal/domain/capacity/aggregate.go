// Package capacity calcula la utilización de canales por código de área
// (servicio de dominio puro, sin acceso a datos).
package capacity

import (
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AreaStats acumulado de canales de un código de área.
type AreaStats struct {
	TotalChannels     int
	AllocatedChannels int
	RemainingChannels int     // Total - Allocated; puede ser negativo si hay sobreasignación
	Utilization       float64 // porcentaje con 1 decimal
}

// Aggregate agrupa por código de área la capacidad de los NSOTrunk y los canales asignados
// por los TrunkMapping.
//
// Un mapping cuyo NSOTrunk no está en trunks se ignora: las referencias colgantes
// (trunk borrado) no son un error aquí.
func Aggregate(trunks []*entity.NSOTrunk, mappings []*entity.TrunkMapping) map[string]AreaStats {
	stats := make(map[string]*AreaStats)
	areaByTrunk := make(map[int64]string, len(trunks))

	for _, t := range trunks {
		acc, ok := stats[t.AreaCode]
		if !ok {
			acc = &AreaStats{}
			stats[t.AreaCode] = acc
		}
		acc.TotalChannels += t.Channels
		areaByTrunk[t.ID] = t.AreaCode
	}

	for _, m := range mappings {
		area, ok := areaByTrunk[m.NSOTrunkID]
		if !ok {
			continue
		}
		stats[area].AllocatedChannels += m.AllocatedChannels
	}

	out := make(map[string]AreaStats, len(stats))
	for area, acc := range stats {
		acc.RemainingChannels = acc.TotalChannels - acc.AllocatedChannels
		acc.Utilization = Utilization(acc.AllocatedChannels, acc.TotalChannels)
		out[area] = *acc
	}
	return out
}

// exactExp fuerza a NewFromFloatWithExponent a representar el float sin redondeo previo.
const exactExp = -1100

// Utilization devuelve round(allocated/total*100, 1), o 0 si total es 0.
// El porcentaje se calcula en float64 y se redondea sobre su valor binario exacto
// con empate al par: 1/16 da 6.2 y 5/16 da 31.2.
func Utilization(allocated, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(allocated) / float64(total) * 100
	return decimal.NewFromFloatWithExponent(pct, exactExp).RoundBank(1).InexactFloat64()
}
