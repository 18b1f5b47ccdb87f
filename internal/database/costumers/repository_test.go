package costumers

import (
	"context"
	"os"
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

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_costumers_" + t.Name() + ".db"
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
	return NewRepository(db), cleanup
}

func newCostumer(t *testing.T, name, document string) entities.Costumer {
	t.Helper()
	c, err := entities.NewCostumer(entities.CostumerPayload{
		Name:     name,
		Document: document,
		Born:     entities.MustParseDate("1990-01-01"),
	})
	require.NoError(t, err)
	return c
}

func TestRepository(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	john := newCostumer(t, "John Doe", "12345678901")
	jane := newCostumer(t, "Jane Roe", "00000000000")

	t.Run("Insert and GetByID", func(t *testing.T) {
		id, err := repo.Insert(ctx, john)
		require.NoError(t, err)
		assert.Equal(t, john.ID, id)
		_, err = repo.Insert(ctx, jane)
		require.NoError(t, err)

		got, ok, err := repo.GetByID(ctx, john.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, john, got)
		assert.Equal(t, "12345678901", got.Document.String())
	})

	t.Run("Search by name", func(t *testing.T) {
		found, err := repo.Search(ctx, "DOE")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, john.ID, found[0].ID)

		found, err = repo.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("GetID", func(t *testing.T) {
		id, ok, err := repo.GetID(ctx, jane.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, jane.ID, id)

		_, ok, err = repo.GetID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Update", func(t *testing.T) {
		changed, err := entities.ParseCostumer(entities.CostumerUpdatePayload{
			ID:       jane.ID,
			Name:     "Jane Roe",
			Document: "99999999999",
			Born:     entities.MustParseDate("1991-02-03"),
		})
		require.NoError(t, err)
		_, err = repo.Update(ctx, changed)
		require.NoError(t, err)

		got, _, err := repo.GetByID(ctx, jane.ID)
		require.NoError(t, err)
		assert.Equal(t, changed, got)
	})

	t.Run("Delete and Count", func(t *testing.T) {
		_, err := repo.Delete(ctx, jane.ID)
		require.NoError(t, err)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.Delete(ctx, jane.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}
