package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
)

var _ repository.DIDRepository = (*DIDRepo)(nil)

// DIDRepo implementación de DIDRepository. trunk_id no es FK: el trunk puede no existir.
type DIDRepo struct {
	q Querier
}

// NewDIDRepository construye el adaptador.
func NewDIDRepository(q Querier) *DIDRepo {
	return &DIDRepo{q: q}
}

const didColumns = `id, did_number, trunk_id, trunk_type, status, created_at`

func scanDID(row pgx.Row) (*entity.DID, error) {
	var d entity.DID
	if err := row.Scan(&d.ID, &d.DIDNumber, &d.TrunkID, &d.TrunkType, &d.Status, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DIDRepo) Create(ctx context.Context, d *entity.DID) error {
	query := `
		INSERT INTO dids (did_number, trunk_id, trunk_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, d.DIDNumber, d.TrunkID, d.TrunkType, d.Status).Scan(&d.ID, &d.CreatedAt); err != nil {
		return translate("insert did", err)
	}
	return nil
}

func (r *DIDRepo) GetByID(ctx context.Context, id int64) (*entity.DID, error) {
	d, err := scanDID(r.q.QueryRow(ctx, `SELECT `+didColumns+` FROM dids WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, translate("get did", err)
	}
	return d, nil
}

func (r *DIDRepo) List(ctx context.Context) ([]*entity.DID, error) {
	rows, err := r.q.Query(ctx, `SELECT `+didColumns+` FROM dids ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list dids: %w", err)
	}
	defer rows.Close()
	var list []*entity.DID
	for rows.Next() {
		d, err := scanDID(rows)
		if err != nil {
			return nil, fmt.Errorf("scan did: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DIDRepo) Update(ctx context.Context, d *entity.DID) error {
	query := `
		UPDATE dids SET did_number = $2, trunk_id = $3, trunk_type = $4, status = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, d.ID, d.DIDNumber, d.TrunkID, d.TrunkType, d.Status)
	if err != nil {
		return translate("update did", err)
	}
	return affected(tag)
}

func (r *DIDRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM dids WHERE id = $1`, id)
	if err != nil {
		return translate("delete did", err)
	}
	return affected(tag)
}

func (r *DIDRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "dids")
}
