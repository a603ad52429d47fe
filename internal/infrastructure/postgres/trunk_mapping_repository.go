package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

var _ repository.TrunkMappingRepository = (*TrunkMappingRepo)(nil)

// TrunkMappingRepo implementación de TrunkMappingRepository.
type TrunkMappingRepo struct {
	q Querier
}

// NewTrunkMappingRepository construye el adaptador.
func NewTrunkMappingRepository(q Querier) *TrunkMappingRepo {
	return &TrunkMappingRepo{q: q}
}

const trunkMappingColumns = `id, nso_trunk_id, vno_trunk_id, allocated_channels, created_at`

func scanTrunkMapping(row pgx.Row) (*entity.TrunkMapping, error) {
	var m entity.TrunkMapping
	if err := row.Scan(&m.ID, &m.NSOTrunkID, &m.VNOTrunkID, &m.AllocatedChannels, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TrunkMappingRepo) Create(ctx context.Context, m *entity.TrunkMapping) error {
	query := `
		INSERT INTO trunk_mappings (nso_trunk_id, vno_trunk_id, allocated_channels)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, m.NSOTrunkID, m.VNOTrunkID, m.AllocatedChannels).Scan(&m.ID, &m.CreatedAt); err != nil {
		return translate("insert trunk mapping", err)
	}
	return nil
}

func (r *TrunkMappingRepo) GetByID(ctx context.Context, id int64) (*entity.TrunkMapping, error) {
	m, err := scanTrunkMapping(r.q.QueryRow(ctx, `SELECT `+trunkMappingColumns+` FROM trunk_mappings WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, translate("get trunk mapping", err)
	}
	return m, nil
}

func (r *TrunkMappingRepo) List(ctx context.Context) ([]*entity.TrunkMapping, error) {
	rows, err := r.q.Query(ctx, `SELECT `+trunkMappingColumns+` FROM trunk_mappings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list trunk mappings: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrunkMapping
	for rows.Next() {
		m, err := scanTrunkMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trunk mapping: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *TrunkMappingRepo) Update(ctx context.Context, m *entity.TrunkMapping) error {
	query := `
		UPDATE trunk_mappings SET nso_trunk_id = $2, vno_trunk_id = $3, allocated_channels = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.NSOTrunkID, m.VNOTrunkID, m.AllocatedChannels)
	if err != nil {
		return translate("update trunk mapping", err)
	}
	return affected(tag)
}

func (r *TrunkMappingRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM trunk_mappings WHERE id = $1`, id)
	if err != nil {
		return translate("delete trunk mapping", err)
	}
	return affected(tag)
}

func (r *TrunkMappingRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "trunk_mappings")
}
