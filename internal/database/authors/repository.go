// Package authors provides database operations for the authors table.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	id, err := repo.Insert(ctx, author)
package authors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	database.Table[entities.Author]
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Table: database.NewTable[entities.Author](db, "authors")}
}

// Insert persists a validated author and returns its id.
func (r *Repository) Insert(ctx context.Context, a entities.Author) (uuid.UUID, error) {
	if err := r.Table.Insert(ctx, &a); err != nil {
		return uuid.Nil, err
	}
	return a.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (entities.Author, bool, error) {
	return r.Table.Get(ctx, id)
}

// Search matches the name case-insensitively. An empty term returns every author.
func (r *Repository) Search(ctx context.Context, term string) ([]entities.Author, error) {
	return r.Table.Where(ctx, "search", "LOWER(name) LIKE LOWER(?)", database.Like(term))
}

// Update overwrites name and birth date of the author with a.ID.
func (r *Repository) Update(ctx context.Context, a entities.Author) (uuid.UUID, error) {
	return r.Table.Update(ctx, a.ID, map[string]any{
		"name": a.Name,
		"born": a.Born,
	})
}
