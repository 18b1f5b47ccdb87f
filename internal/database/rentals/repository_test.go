package rentals

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_rentals_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db), db, cleanup
}

// fixture is the library from the walkthrough: one author, one book, one costumer.
type fixture struct {
	author   entities.Author
	book     entities.Book
	costumer entities.Costumer
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	author, err := entities.NewAuthor(entities.AuthorPayload{
		Name: "Jane Austen",
		Born: entities.MustParseDate("1775-12-16"),
	})
	require.NoError(t, err)
	book, err := entities.NewBook(entities.BookPayload{
		Name:       "Emma",
		AuthorUUID: author.ID,
		Editor:     "Murray",
		Release:    entities.MustParseDate("1815-12-23"),
	})
	require.NoError(t, err)
	costumer, err := entities.NewCostumer(entities.CostumerPayload{
		Name:     "John Doe",
		Document: "12345678901",
		Born:     entities.MustParseDate("1990-01-01"),
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&author).Error)
	require.NoError(t, db.Create(&book).Error)
	require.NoError(t, db.Create(&costumer).Error)
	return fixture{author: author, book: book, costumer: costumer}
}

func newRental(t *testing.T, costumer, book uuid.UUID) entities.Rental {
	t.Helper()
	r, err := entities.NewRental(entities.RentalPayload{
		CostumerUUID: costumer,
		BookUUID:     book,
		BorrowedAt:   entities.MustParseDate("2024-01-01"),
		DueDate:      entities.MustParseDate("2024-01-15"),
	})
	require.NoError(t, err)
	return r
}

func TestRepository_WalkthroughView(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	r := newRental(t, f.costumer.ID, f.book.ID)
	id, err := repo.Insert(ctx, r)
	require.NoError(t, err)

	raw, ok, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, raw)
	assert.Nil(t, raw.ReturnedAt)

	view, ok, err := repo.GetView(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "John Doe", view.CostumerName.String())
	assert.Equal(t, "Emma", view.BookName.String())
	assert.Equal(t, entities.MustParseDate("2024-01-01"), view.BorrowedAt)
	assert.Equal(t, entities.MustParseDate("2024-01-15"), view.DueDate)
	assert.Nil(t, view.ReturnedAt)
}

func TestRepository_JoinedViewDropsOrphans(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	r := newRental(t, f.costumer.ID, f.book.ID)
	_, err := repo.Insert(ctx, r)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.Costumer{}, "id = ?", f.costumer.ID).Error)

	_, ok, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok, "raw row survives")

	_, ok, err = repo.GetView(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok, "inner join drops the rental")

	views, err := repo.SearchViews(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, views)

	raws, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, raws, 1)
}

func TestRepository_InsertChecksReferences(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	t.Run("unknown costumer", func(t *testing.T) {
		_, err := repo.Insert(ctx, newRental(t, uuid.New(), f.book.ID))
		assert.ErrorIs(t, err, database.ErrConstraint)
		assert.ErrorContains(t, err, "costumer")
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := repo.Insert(ctx, newRental(t, f.costumer.ID, uuid.New()))
		assert.ErrorIs(t, err, database.ErrConstraint)
		assert.ErrorContains(t, err, "book")
	})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_Search(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	r := newRental(t, f.costumer.ID, f.book.ID)
	_, err := repo.Insert(ctx, r)
	require.NoError(t, err)

	t.Run("raw search matches the costumer uuid text", func(t *testing.T) {
		prefix := strings.ToUpper(f.costumer.ID.String()[:8])
		found, err := repo.Search(ctx, prefix)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, r.ID, found[0].ID)
	})

	t.Run("raw search matches the book uuid text", func(t *testing.T) {
		found, err := repo.Search(ctx, f.book.ID.String())
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("raw search does not match names", func(t *testing.T) {
		found, err := repo.Search(ctx, "John Doe")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("view search matches costumer or book name", func(t *testing.T) {
		for _, term := range []string{"john", "EMMA", "oe", ""} {
			views, err := repo.SearchViews(ctx, term)
			require.NoError(t, err)
			require.Len(t, views, 1, term)
			assert.Equal(t, r.ID, views[0].ID)
		}

		views, err := repo.SearchViews(ctx, "foo")
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestRepository_UpdateReturn(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	r := newRental(t, f.costumer.ID, f.book.ID)
	_, err := repo.Insert(ctx, r)
	require.NoError(t, err)

	returned := entities.MustParseDate("2024-01-10")
	changed, err := entities.ParseRental(entities.RentalUpdatePayload{
		ID:           r.ID,
		CostumerUUID: r.CostumerUUID,
		BookUUID:     r.BookUUID,
		BorrowedAt:   r.BorrowedAt,
		DueDate:      r.DueDate,
		ReturnedAt:   &returned,
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, changed)
	require.NoError(t, err)

	got, _, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReturnedAt)
	assert.Equal(t, returned, *got.ReturnedAt)

	view, ok, err := repo.GetView(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, view.ReturnedAt)
	assert.Equal(t, returned, *view.ReturnedAt)

	t.Run("clearing the return date", func(t *testing.T) {
		changed.ReturnedAt = nil
		_, err := repo.Update(ctx, changed)
		require.NoError(t, err)

		got, _, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ReturnedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		ghost := newRental(t, f.costumer.ID, f.book.ID)
		_, err := repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	f := seed(t, db)

	r := newRental(t, f.costumer.ID, f.book.ID)
	_, err := repo.Insert(ctx, r)
	require.NoError(t, err)

	id, err := repo.Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, id)

	_, ok, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Delete(ctx, r.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
