package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

var _ repository.VNOTrunkRepository = (*VNOTrunkRepo)(nil)

// VNOTrunkRepo implementación de VNOTrunkRepository (usable con pool o tx).
type VNOTrunkRepo struct {
	q Querier
}

// NewVNOTrunkRepository construye el adaptador.
func NewVNOTrunkRepository(q Querier) *VNOTrunkRepo {
	return &VNOTrunkRepo{q: q}
}

const vnoTrunkColumns = `id, service_id, pilot_number, channels, area_code, status, customer_id, created_at`

func scanVNOTrunk(row pgx.Row) (*entity.VNOTrunk, error) {
	var t entity.VNOTrunk
	err := row.Scan(&t.ID, &t.ServiceID, &t.PilotNumber, &t.Channels, &t.AreaCode, &t.Status, &t.CustomerID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *VNOTrunkRepo) Create(ctx context.Context, t *entity.VNOTrunk) error {
	query := `
		INSERT INTO vno_trunks (service_id, pilot_number, channels, area_code, status, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, t.ServiceID, t.PilotNumber, t.Channels, t.AreaCode, t.Status, t.CustomerID).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return translate("insert vno trunk", err)
	}
	return nil
}

func (r *VNOTrunkRepo) GetByID(ctx context.Context, id int64) (*entity.VNOTrunk, error) {
	t, err := scanVNOTrunk(r.q.QueryRow(ctx, `SELECT `+vnoTrunkColumns+` FROM vno_trunks WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, translate("get vno trunk", err)
	}
	return t, nil
}

func (r *VNOTrunkRepo) List(ctx context.Context) ([]*entity.VNOTrunk, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vnoTrunkColumns+` FROM vno_trunks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vno trunks: %w", err)
	}
	defer rows.Close()
	var list []*entity.VNOTrunk
	for rows.Next() {
		t, err := scanVNOTrunk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vno trunk: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *VNOTrunkRepo) Update(ctx context.Context, t *entity.VNOTrunk) error {
	query := `
		UPDATE vno_trunks
		SET service_id = $2, pilot_number = $3, channels = $4, area_code = $5, status = $6, customer_id = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.ServiceID, t.PilotNumber, t.Channels, t.AreaCode, t.Status, t.CustomerID)
	if err != nil {
		return translate("update vno trunk", err)
	}
	return affected(tag)
}

func (r *VNOTrunkRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM vno_trunks WHERE id = $1`, id)
	if err != nil {
		return translate("delete vno trunk", err)
	}
	return affected(tag)
}

func (r *VNOTrunkRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "vno_trunks")
}
