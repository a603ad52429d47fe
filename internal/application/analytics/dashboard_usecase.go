// Package analytics contiene el caso de uso del Dashboard de utilización de canales.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain/capacity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

// StatsCache caché opcional del dashboard indexada por versión del inventario.
// La versión cambia tras cada commit de escritura, así que una entrada nunca
// sirve datos de otra versión. Los errores se tratan como fallo de caché.
type StatsCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64) (*dto.DashboardStatsDTO, error) // nil, nil si no hay entrada
	Set(ctx context.Context, version int64, stats *dto.DashboardStatsDTO) error
}

// DashboardUseCase calcula la utilización de canales por código de área.
//
// Recorre todas las tablas en cada llamada (volúmenes de inventario, no de CDR).
// Con StatsCache configurada reutiliza el resultado mientras el inventario no cambie.
type DashboardUseCase struct {
	tx    repository.TxRunner
	cache StatsCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(tx repository.TxRunner, cache StatsCache) *DashboardUseCase {
	return &DashboardUseCase{tx: tx, cache: cache}
}

// GetStats devuelve las estadísticas por área más los totales de NSO, VNO y DID.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.cache == nil {
		return uc.compute(ctx)
	}

	version, err := uc.cache.Version(ctx)
	if err != nil {
		return uc.compute(ctx)
	}
	if cached, err := uc.cache.Get(ctx, version); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	_ = uc.cache.Set(ctx, version, stats)
	return stats, nil
}

func (uc *DashboardUseCase) compute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var out *dto.DashboardStatsDTO
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		trunks, err := r.NSOTrunks.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: trunks NSO: %w", err)
		}
		mappings, err := r.Mappings.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: asignaciones: %w", err)
		}
		vnoCount, err := r.VNOTrunks.Count(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: conteo VNO: %w", err)
		}
		didCount, err := r.DIDs.Count(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: conteo DID: %w", err)
		}

		byArea := capacity.Aggregate(trunks, mappings)
		stats := make(map[string]dto.AreaStatsDTO, len(byArea))
		for area, s := range byArea {
			stats[area] = dto.AreaStatsDTO{
				TotalChannels:     s.TotalChannels,
				AllocatedChannels: s.AllocatedChannels,
				RemainingChannels: s.RemainingChannels,
				Utilization:       s.Utilization,
			}
		}

		out = &dto.DashboardStatsDTO{
			StatsByAreaCode: stats,
			TotalNSOTrunks:  len(trunks),
			TotalVNOTrunks:  vnoCount,
			TotalDIDs:       didCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
