package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/repo"
)

func newSession(t *testing.T, store model.SnapshotStore) *Session {
	t.Helper()
	s := New(context.Background(), catalog.Default(), store, model.StoreConfig{ToastDuration: time.Minute})
	t.Cleanup(s.Close)
	return s
}

func toastMessage(t *testing.T, s *Session) string {
	t.Helper()
	cur, ok := s.Toasts.Current()
	require.True(t, ok, "expected an active toast")
	return cur.Message
}

func TestAddToCart_ShowsToast(t *testing.T) {
	s := newSession(t, repo.NewMemoryStore())

	line, err := s.AddToCart(context.Background(), "1", 2)
	require.NoError(t, err)
	assert.Equal(t, "Shades of Nature", line.Name)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 398, s.Cart.TotalPrice())
	assert.Equal(t, AddedToCartToast, toastMessage(t, s))
}

func TestAddToCart_Rejections(t *testing.T) {
	s := newSession(t, repo.NewMemoryStore())
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "does-not-exist", 1)
	assert.ErrorIs(t, err, errx.ErrProductNotFound)

	_, err = s.AddToCart(ctx, "", 1)
	assert.ErrorIs(t, err, errx.ErrMissingProductID)

	_, err = s.AddToCart(ctx, "1", 0)
	assert.ErrorIs(t, err, errx.ErrInvalidQuantity)

	assert.Empty(t, s.Cart.Lines())
	_, shown := s.Toasts.Current()
	assert.False(t, shown, "rejected adds raise no toast")
}

func TestToggleFavorite_Toasts(t *testing.T) {
	s := newSession(t, repo.NewMemoryStore())
	ctx := context.Background()

	on, err := s.ToggleFavorite(ctx, "5")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, AddedToFavoritesToast, toastMessage(t, s))

	on, err = s.ToggleFavorite(ctx, "5")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, RemovedFromFavoritesToast, toastMessage(t, s))

	_, err = s.ToggleFavorite(ctx, "")
	assert.ErrorIs(t, err, errx.ErrMissingProductID)
}

func TestClearCart_Toast(t *testing.T) {
	s := newSession(t, repo.NewMemoryStore())
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "6", 1)
	require.NoError(t, err)
	s.ClearCart(ctx)

	assert.Empty(t, s.Cart.Lines())
	assert.Equal(t, CartClearedToast, toastMessage(t, s))
}

func TestView_DecoratesDiscountAndFavorite(t *testing.T) {
	s := newSession(t, repo.NewMemoryStore())
	_, err := s.ToggleFavorite(context.Background(), "1")
	require.NoError(t, err)

	v, err := s.Product("1")
	require.NoError(t, err)
	assert.Equal(t, 20, v.DiscountPercent)
	assert.True(t, v.Favorite)

	v, err = s.Product("5")
	require.NoError(t, err)
	assert.Zero(t, v.DiscountPercent)
	assert.False(t, v.Favorite)

	_, err = s.Product("nope")
	assert.ErrorIs(t, err, errx.ErrProductNotFound)
}

func TestFavoriteProducts_KeepsOrderAndSkipsUnknown(t *testing.T) {
	store := repo.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), model.FavoritesSnapshotKey, []byte(`["9","gone","2"]`)))
	s := newSession(t, store)

	got := s.FavoriteProducts()
	require.Len(t, got, 2)
	assert.Equal(t, "9", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, 3, s.Favorites.Count())
}

func TestSuggestions_UsesConfiguredLimit(t *testing.T) {
	s := New(context.Background(), catalog.Default(), repo.NewMemoryStore(), model.StoreConfig{SearchSuggestionLimit: 2})
	t.Cleanup(s.Close)

	assert.Len(t, s.Suggestions("candle"), 2)
	assert.Empty(t, s.Suggestions("   "))
	assert.Equal(t, 12, s.PageSize())
}

func TestSession_RestoresAcrossInstances(t *testing.T) {
	store := repo.NewMemoryStore()
	ctx := context.Background()

	first := newSession(t, store)
	_, err := first.AddToCart(ctx, "3", 1)
	require.NoError(t, err)
	_, err = first.ToggleFavorite(ctx, "3")
	require.NoError(t, err)

	second := newSession(t, store)
	assert.Equal(t, 250, second.Cart.TotalPrice())
	assert.True(t, second.Favorites.IsFavorite("3"))
	_, shown := second.Toasts.Current()
	assert.False(t, shown, "toasts are never persisted")
}
