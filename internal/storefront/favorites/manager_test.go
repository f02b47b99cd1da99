package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/repo"
)

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func (brokenStore) Save(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}

func TestToggleFavorite_AddThenRemove(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	m := NewManager(ctx, store)

	assert.True(t, m.ToggleFavorite(ctx, "5"))
	assert.Equal(t, []string{"5"}, m.Favorites())
	assert.True(t, m.IsFavorite("5"))

	assert.False(t, m.ToggleFavorite(ctx, "5"))
	assert.Equal(t, []string{}, m.Favorites())
	assert.False(t, m.IsFavorite("5"))

	data, found, err := store.Load(ctx, model.FavoritesSnapshotKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(data))
}

func TestToggleFavorite_PairRestoresPriorState(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, repo.NewMemoryStore())
	for _, id := range []string{"1", "2", "3"} {
		m.ToggleFavorite(ctx, id)
	}

	for _, id := range []string{"2", "9", "1", "3"} {
		before := m.Favorites()
		m.ToggleFavorite(ctx, id)
		m.ToggleFavorite(ctx, id)
		assert.ElementsMatch(t, before, m.Favorites(), "toggling %s twice", id)
	}
}

func TestFavorites_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, repo.NewMemoryStore())
	m.ToggleFavorite(ctx, "3")
	m.ToggleFavorite(ctx, "1")
	m.ToggleFavorite(ctx, "2")
	m.ToggleFavorite(ctx, "1")

	assert.Equal(t, []string{"3", "2"}, m.Favorites())
	assert.Equal(t, 2, m.Count())
}

func TestNewManager_RestoresAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	require.NoError(t, store.Save(ctx, model.FavoritesSnapshotKey, []byte(`["4","4","",  "7"]`)))

	m := NewManager(ctx, store)
	assert.Equal(t, []string{"4", "7"}, m.Favorites())
}

func TestNewManager_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	require.NoError(t, store.Save(ctx, model.FavoritesSnapshotKey, []byte(`{"5":true}`)))

	m := NewManager(ctx, store)
	assert.Empty(t, m.Favorites())
}

func TestManager_ToleratesBrokenStore(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, brokenStore{})

	assert.True(t, m.ToggleFavorite(ctx, "5"))
	assert.True(t, m.IsFavorite("5"))
}
