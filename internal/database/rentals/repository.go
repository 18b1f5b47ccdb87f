// Package rentals provides database operations for the rentals table and the
// joined RentalView projection.
//
// Views are built with inner joins on costumers and books, so a rental whose
// costumer or book has been deleted is still returned by GetByID and Search
// but not by GetView and SearchViews.
package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/entities"
)

const viewColumns = "rentals.id, costumers.name AS costumer_name, books.name AS book_name, " +
	"rentals.borrowed_at, rentals.due_date, rentals.returned_at"

// Repository handles all rental database operations.
type Repository struct {
	database.Table[entities.Rental]
	costumers database.Table[entities.Costumer]
	books     database.Table[entities.Book]
}

// NewRepository creates a new rentals repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Table:     database.NewTable[entities.Rental](db, "rentals"),
		costumers: database.NewTable[entities.Costumer](db, "costumers"),
		books:     database.NewTable[entities.Book](db, "books"),
	}
}

// Insert persists a validated rental. Both the costumer and the book must exist.
func (r *Repository) Insert(ctx context.Context, rental entities.Rental) (uuid.UUID, error) {
	if err := r.checkReferences(ctx, r.Op("insert"), rental); err != nil {
		return uuid.Nil, err
	}
	if err := r.Table.Insert(ctx, &rental); err != nil {
		return uuid.Nil, err
	}
	return rental.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (entities.Rental, bool, error) {
	return r.Table.Get(ctx, id)
}

// Search matches the text form of costumer_uuid or book_uuid.
func (r *Repository) Search(ctx context.Context, term string) ([]entities.Rental, error) {
	pattern := database.Like(term)
	return r.Table.Where(ctx, "search",
		"LOWER(CAST(costumer_uuid AS TEXT)) LIKE LOWER(?) OR LOWER(CAST(book_uuid AS TEXT)) LIKE LOWER(?)",
		pattern, pattern)
}

// Update overwrites every mutable column, returned_at included.
func (r *Repository) Update(ctx context.Context, rental entities.Rental) (uuid.UUID, error) {
	if err := r.checkReferences(ctx, r.Op("update"), rental); err != nil {
		return uuid.Nil, err
	}
	return r.Table.Update(ctx, rental.ID, map[string]any{
		"costumer_uuid": rental.CostumerUUID,
		"book_uuid":     rental.BookUUID,
		"borrowed_at":   rental.BorrowedAt,
		"due_date":      rental.DueDate,
		"returned_at":   rental.ReturnedAt,
	})
}

func (r *Repository) views(ctx context.Context) *gorm.DB {
	return r.DB(ctx).
		Table("rentals").
		Select(viewColumns).
		Joins("INNER JOIN costumers ON costumers.id = rentals.costumer_uuid").
		Joins("INNER JOIN books ON books.id = rentals.book_uuid")
}

// GetView returns the joined view of one rental. A rental whose costumer or
// book is gone is reported as absent.
func (r *Repository) GetView(ctx context.Context, id uuid.UUID) (entities.RentalView, bool, error) {
	var view entities.RentalView
	err := r.views(ctx).Where("rentals.id = ?", id).Take(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.RentalView{}, false, nil
	}
	if err != nil {
		return entities.RentalView{}, false, database.Wrap(r.Op("get_view"), err)
	}
	return view, true, nil
}

// SearchViews matches costumer name or book name case-insensitively.
func (r *Repository) SearchViews(ctx context.Context, term string) ([]entities.RentalView, error) {
	pattern := database.Like(term)
	views := make([]entities.RentalView, 0)
	err := r.views(ctx).
		Where("LOWER(costumers.name) LIKE LOWER(?) OR LOWER(books.name) LIKE LOWER(?)", pattern, pattern).
		Order("rentals.id").
		Scan(&views).Error
	if err != nil {
		return nil, database.Wrap(r.Op("search_views"), err)
	}
	return views, nil
}

func (r *Repository) checkReferences(ctx context.Context, op string, rental entities.Rental) error {
	ok, err := r.costumers.Exists(ctx, rental.CostumerUUID)
	if err != nil {
		return err
	}
	if !ok {
		return database.Constraint(op, fmt.Errorf("costumer %s does not exist", rental.CostumerUUID))
	}
	ok, err = r.books.Exists(ctx, rental.BookUUID)
	if err != nil {
		return err
	}
	if !ok {
		return database.Constraint(op, fmt.Errorf("book %s does not exist", rental.BookUUID))
	}
	return nil
}
