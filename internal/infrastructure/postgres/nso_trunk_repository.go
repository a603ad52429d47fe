package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

var _ repository.NSOTrunkRepository = (*NSOTrunkRepo)(nil)

// NSOTrunkRepo implementación de NSOTrunkRepository (usable con pool o tx).
type NSOTrunkRepo struct {
	q Querier
}

// NewNSOTrunkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNSOTrunkRepository(q Querier) *NSOTrunkRepo {
	return &NSOTrunkRepo{q: q}
}

const nsoTrunkColumns = `id, service_id, pilot_number, channels, area_code, status, created_at`

func scanNSOTrunk(row pgx.Row) (*entity.NSOTrunk, error) {
	var t entity.NSOTrunk
	err := row.Scan(&t.ID, &t.ServiceID, &t.PilotNumber, &t.Channels, &t.AreaCode, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo trunk NSO.
func (r *NSOTrunkRepo) Create(ctx context.Context, t *entity.NSOTrunk) error {
	query := `
		INSERT INTO nso_trunks (service_id, pilot_number, channels, area_code, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, t.ServiceID, t.PilotNumber, t.Channels, t.AreaCode, t.Status).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return translate("insert nso trunk", err)
	}
	return nil
}

// GetByID obtiene un trunk NSO por ID.
func (r *NSOTrunkRepo) GetByID(ctx context.Context, id int64) (*entity.NSOTrunk, error) {
	t, err := scanNSOTrunk(r.q.QueryRow(ctx, `SELECT `+nsoTrunkColumns+` FROM nso_trunks WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, translate("get nso trunk", err)
	}
	return t, nil
}

// List devuelve todos los trunks NSO ordenados por id.
func (r *NSOTrunkRepo) List(ctx context.Context) ([]*entity.NSOTrunk, error) {
	rows, err := r.q.Query(ctx, `SELECT `+nsoTrunkColumns+` FROM nso_trunks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list nso trunks: %w", err)
	}
	defer rows.Close()
	var list []*entity.NSOTrunk
	for rows.Next() {
		t, err := scanNSOTrunk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nso trunk: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza un trunk NSO.
func (r *NSOTrunkRepo) Update(ctx context.Context, t *entity.NSOTrunk) error {
	query := `
		UPDATE nso_trunks
		SET service_id = $2, pilot_number = $3, channels = $4, area_code = $5, status = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.ServiceID, t.PilotNumber, t.Channels, t.AreaCode, t.Status)
	if err != nil {
		return translate("update nso trunk", err)
	}
	return affected(tag)
}

// Delete elimina un trunk NSO. Las filas de trunk_mappings que lo referencian no se tocan.
func (r *NSOTrunkRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM nso_trunks WHERE id = $1`, id)
	if err != nil {
		return translate("delete nso trunk", err)
	}
	return affected(tag)
}

// Count número total de trunks NSO.
func (r *NSOTrunkRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "nso_trunks")
}
