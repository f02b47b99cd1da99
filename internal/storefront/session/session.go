// Package session bundles the catalog with the cart, favorites and toast
// managers and turns user intents into manager calls plus a toast.
package session

import (
	"context"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/cart"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/favorites"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/toast"
)

const (
	AddedToCartToast          = "🛒 Added to cart!"
	AddedToFavoritesToast     = "❤️ Added to favorites!"
	RemovedFromFavoritesToast = "💔 Removed from favorites!"
	CartClearedToast          = "Cart cleared!"
)

// Session is the single shopper's state. Managers are exported for read
// access; mutations that should raise a toast go through Session methods.
type Session struct {
	Catalog   *catalog.Catalog
	Cart      *cart.Manager
	Favorites *favorites.Manager
	Toasts    *toast.Manager

	suggestionLimit int
	pageSize        int
}

// New restores cart and favorites from store and starts with no toast.
func New(ctx context.Context, cat *catalog.Catalog, store model.SnapshotStore, cfg model.StoreConfig) *Session {
	s := &Session{
		Catalog:         cat,
		Cart:            cart.NewManager(ctx, store),
		Favorites:       favorites.NewManager(ctx, store),
		Toasts:          toast.NewManager(cfg.ToastDuration),
		suggestionLimit: cfg.SearchSuggestionLimit,
		pageSize:        cfg.CollectionPageSize,
	}
	if s.suggestionLimit <= 0 {
		s.suggestionLimit = 5
	}
	if s.pageSize <= 0 {
		s.pageSize = 12
	}
	return s
}

// PageSize is the collection step used when the caller does not pass one.
func (s *Session) PageSize() int { return s.pageSize }

// AddToCart looks id up in the catalog and adds quantity of it.
func (s *Session) AddToCart(ctx context.Context, id string, quantity int) (model.CartLine, error) {
	if id == "" {
		return model.CartLine{}, errx.ErrMissingProductID
	}
	p, ok := s.Catalog.Find(id)
	if !ok {
		return model.CartLine{}, errx.ErrProductNotFound
	}
	if err := s.Cart.AddToCart(ctx, p, quantity); err != nil {
		return model.CartLine{}, err
	}
	s.Toasts.ShowToast(AddedToCartToast)
	line, _ := s.Cart.Line(id)
	return line, nil
}

func (s *Session) RemoveFromCart(ctx context.Context, id string) {
	s.Cart.RemoveFromCart(ctx, id)
}

func (s *Session) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.Cart.UpdateQuantity(ctx, id, quantity)
}

// ClearCart empties the cart and confirms it with a toast.
func (s *Session) ClearCart(ctx context.Context) {
	s.Cart.ClearCart(ctx)
	s.Toasts.ShowToast(CartClearedToast)
}

// ToggleFavorite flips membership of id and reports the new state.
func (s *Session) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errx.ErrMissingProductID
	}
	on := s.Favorites.ToggleFavorite(ctx, id)
	if on {
		s.Toasts.ShowToast(AddedToFavoritesToast)
	} else {
		s.Toasts.ShowToast(RemovedFromFavoritesToast)
	}
	return on, nil
}

// View decorates p with its discount and favorite flag.
func (s *Session) View(p model.Product) model.ProductView {
	return model.ProductView{
		Product:         p,
		DiscountPercent: catalog.DiscountPercent(p),
		Favorite:        s.Favorites.IsFavorite(p.ID),
	}
}

func (s *Session) Views(products []model.Product) []model.ProductView {
	out := make([]model.ProductView, len(products))
	for i, p := range products {
		out[i] = s.View(p)
	}
	return out
}

// Product returns the decorated product with the given id.
func (s *Session) Product(id string) (model.ProductView, error) {
	p, ok := s.Catalog.Find(id)
	if !ok {
		return model.ProductView{}, errx.ErrProductNotFound
	}
	return s.View(p), nil
}

// Suggestions returns the search-as-you-type matches for query.
func (s *Session) Suggestions(query string) []model.ProductView {
	return s.Views(catalog.Suggestions(s.Catalog.Products(), query, s.suggestionLimit))
}

// FavoriteProducts resolves the favorite ids against the catalog, in the
// order they were favorited. Ids no longer in the catalog are skipped.
func (s *Session) FavoriteProducts() []model.ProductView {
	ids := s.Favorites.Favorites()
	out := make([]model.ProductView, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.Catalog.Find(id); ok {
			out = append(out, s.View(p))
		}
	}
	return out
}

// Close stops the toast timer.
func (s *Session) Close() {
	s.Toasts.Close()
}
