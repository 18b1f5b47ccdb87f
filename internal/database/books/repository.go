// Package books provides database operations for the books table.
//
// A book references its author by author_uuid. The reference is checked on
// insert and update; deleting the author later leaves the book in place.
package books

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	database.Table[entities.Book]
	authors database.Table[entities.Author]
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Table:   database.NewTable[entities.Book](db, "books"),
		authors: database.NewTable[entities.Author](db, "authors"),
	}
}

// Insert persists a validated book. It fails with database.ErrConstraint when
// the referenced author does not exist.
func (r *Repository) Insert(ctx context.Context, b entities.Book) (uuid.UUID, error) {
	if err := r.checkAuthor(ctx, r.Op("insert"), b.AuthorUUID); err != nil {
		return uuid.Nil, err
	}
	if err := r.Table.Insert(ctx, &b); err != nil {
		return uuid.Nil, err
	}
	return b.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (entities.Book, bool, error) {
	return r.Table.Get(ctx, id)
}

// Search matches title or editor case-insensitively.
func (r *Repository) Search(ctx context.Context, term string) ([]entities.Book, error) {
	pattern := database.Like(term)
	return r.Table.Where(ctx, "search",
		"LOWER(name) LIKE LOWER(?) OR LOWER(editor) LIKE LOWER(?)", pattern, pattern)
}

// Update overwrites every mutable column of the book with b.ID.
func (r *Repository) Update(ctx context.Context, b entities.Book) (uuid.UUID, error) {
	if err := r.checkAuthor(ctx, r.Op("update"), b.AuthorUUID); err != nil {
		return uuid.Nil, err
	}
	return r.Table.Update(ctx, b.ID, map[string]any{
		"name":        b.Name,
		"author_uuid": b.AuthorUUID,
		"editor":      b.Editor,
		"release":     b.Release,
	})
}

func (r *Repository) checkAuthor(ctx context.Context, op string, id uuid.UUID) error {
	ok, err := r.authors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return database.Constraint(op, fmt.Errorf("author %s does not exist", id))
	}
	return nil
}
