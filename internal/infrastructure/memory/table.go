package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Trunks-api/internal/domain"
)

// table tabla en memoria con id autoincremental.
// Las filas se guardan y devuelven como copias para que el llamador no comparta estado.
type table[T any] struct {
	rows map[int64]*T
	next int64

	id       func(*T) *int64
	created  func(*T) *time.Time
	copyRow  func(*T) *T
	conflict func(a, b *T) bool // true si a y b violan una restricción única
	now      func() time.Time
}

func (t *table[T]) clone() *table[T] {
	c := *t
	c.rows = make(map[int64]*T, len(t.rows))
	for id, row := range t.rows {
		c.rows[id] = t.copyRow(row)
	}
	return &c
}

func (t *table[T]) checkUnique(v *T, skipID int64) error {
	if t.conflict == nil {
		return nil
	}
	for id, row := range t.rows {
		if id != skipID && t.conflict(row, v) {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func (t *table[T]) Create(_ context.Context, v *T) error {
	if err := t.checkUnique(v, 0); err != nil {
		return err
	}
	t.next++
	*t.id(v) = t.next
	*t.created(v) = t.now().UTC()
	t.rows[t.next] = t.copyRow(v)
	return nil
}

func (t *table[T]) GetByID(_ context.Context, id int64) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return t.copyRow(row), nil
}

func (t *table[T]) List(_ context.Context) ([]*T, error) {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.copyRow(t.rows[id]))
	}
	return out, nil
}

func (t *table[T]) Update(_ context.Context, v *T) error {
	id := *t.id(v)
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	if err := t.checkUnique(v, id); err != nil {
		return err
	}
	t.rows[id] = t.copyRow(v)
	return nil
}

func (t *table[T]) Delete(_ context.Context, id int64) error {
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) Count(_ context.Context) (int, error) {
	return len(t.rows), nil
}
