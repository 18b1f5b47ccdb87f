// Package costumers provides database operations for the costumers table.
package costumers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/entities"
)

type Repository struct {
	database.Table[entities.Costumer]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Table: database.NewTable[entities.Costumer](db, "costumers")}
}

func (r *Repository) Insert(ctx context.Context, c entities.Costumer) (uuid.UUID, error) {
	if err := r.Table.Insert(ctx, &c); err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (entities.Costumer, bool, error) {
	return r.Table.Get(ctx, id)
}

// Search matches the costumer name case-insensitively.
func (r *Repository) Search(ctx context.Context, term string) ([]entities.Costumer, error) {
	return r.Table.Where(ctx, "search", "LOWER(name) LIKE LOWER(?)", database.Like(term))
}

func (r *Repository) Update(ctx context.Context, c entities.Costumer) (uuid.UUID, error) {
	return r.Table.Update(ctx, c.ID, map[string]any{
		"name":     c.Name,
		"document": c.Document,
		"born":     c.Born,
	})
}
