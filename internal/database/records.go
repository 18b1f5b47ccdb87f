package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table holds the keyed CRUD statements every library table shares. The
// per-table repositories embed it and add their own search and integrity
// checks. E must be a gorm model keyed by an "id" uuid column.
type Table[E any] struct {
	db   *gorm.DB
	name string
}

func NewTable[E any](db *gorm.DB, name string) Table[E] {
	return Table[E]{db: db, name: name}
}

// DB returns the handle bound to ctx.
func (t Table[E]) DB(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

// Op names an operation for StoreError, e.g. "authors.insert".
func (t Table[E]) Op(verb string) string {
	return t.name + "." + verb
}

func (t Table[E]) Insert(ctx context.Context, e *E) error {
	return Wrap(t.Op("insert"), t.DB(ctx).Create(e).Error)
}

// Get returns the row keyed by id. A missing row is (zero, false, nil).
func (t Table[E]) Get(ctx context.Context, id uuid.UUID) (E, bool, error) {
	var e E
	err := t.DB(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero E
		return zero, false, nil
	}
	if err != nil {
		var zero E
		return zero, false, Wrap(t.Op("get"), err)
	}
	return e, true, nil
}

// GetID probes for id without loading the row.
func (t Table[E]) GetID(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	var ids []uuid.UUID
	err := t.DB(ctx).Model(new(E)).Where("id = ?", id).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return uuid.Nil, false, Wrap(t.Op("get_id"), err)
	}
	if len(ids) == 0 {
		return uuid.Nil, false, nil
	}
	return ids[0], true, nil
}

// Exists is GetID without the key.
func (t Table[E]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok, err := t.GetID(ctx, id)
	return ok, err
}

// Where returns every row matching query, ordered by id.
func (t Table[E]) Where(ctx context.Context, op string, query string, args ...any) ([]E, error) {
	rows := make([]E, 0)
	err := t.DB(ctx).Where(query, args...).Order("id").Find(&rows).Error
	if err != nil {
		return nil, Wrap(t.Op(op), err)
	}
	return rows, nil
}

// Update overwrites columns of the row keyed by id in one statement. Zero
// rows affected is reported as ErrNotFound.
func (t Table[E]) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (uuid.UUID, error) {
	result := t.DB(ctx).Model(new(E)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return uuid.Nil, Wrap(t.Op("update"), result.Error)
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, NotFound(t.Op("update"))
	}
	return id, nil
}

// Delete removes the row keyed by id. Zero rows affected is reported as
// ErrNotFound.
func (t Table[E]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	result := t.DB(ctx).Where("id = ?", id).Delete(new(E))
	if result.Error != nil {
		return uuid.Nil, Wrap(t.Op("delete"), result.Error)
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, NotFound(t.Op("delete"))
	}
	return id, nil
}

func (t Table[E]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.DB(ctx).Model(new(E)).Count(&n).Error; err != nil {
		return 0, Wrap(t.Op("count"), err)
	}
	return n, nil
}

// Like builds the substring pattern used by every case-insensitive search.
func Like(term string) string {
	return "%" + term + "%"
}
