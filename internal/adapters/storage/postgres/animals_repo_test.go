package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"digital-zoo/internal/domain/zoo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base real: ZOO_TEST_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) *AnimalsRepo {
	t.Helper()

	dsn := os.Getenv("ZOO_TEST_DSN")
	if dsn == "" {
		t.Skip("ZOO_TEST_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE animals`)
	require.NoError(t, err)

	return NewAnimalsRepo(db)
}

func TestAnimalsRepo_RoundTripInOrder(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ids := make([]string, 0, 3)
	for _, name := range []string{"Thor", "Kibo", "Theo"} {
		rec := zoo.Record{
			ID:        uuid.NewString(),
			Kind:      zoo.KindLion,
			Name:      name,
			Age:       5,
			Species:   zoo.SpeciesLion,
			Diet:      "Carnivore",
			Habitat:   "Savanna",
			CreatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, rec))
		ids = append(ids, rec.ID)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, rec := range items {
		assert.Equal(t, ids[i], rec.ID)
	}

	got, err := repo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Kibo", got.Name)
	assert.Equal(t, zoo.KindLion, got.Kind)

	require.NoError(t, repo.Delete(ctx, ids[1]))
	assert.ErrorIs(t, repo.Delete(ctx, ids[1]), zoo.ErrNotFound)

	_, err = repo.GetByID(ctx, ids[1])
	assert.ErrorIs(t, err, zoo.ErrNotFound)
}

func TestAnimalsRepo_GetByIDBlank(t *testing.T) {
	repo := NewAnimalsRepo(nil)
	_, err := repo.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, zoo.ErrNotFound)
}
