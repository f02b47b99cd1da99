package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// ----- Catalog -----

type productList struct {
	Products []model.ProductView `json:"products"`
	Total    int                 `json:"total"`
	HasMore  bool                `json:"hasMore"`
}

// listProducts serves ?category=&search=&sort=&visible=. visible defaults
// to one page; 0 returns everything.
func (h *handler) listProducts(c *gin.Context) {
	visible := h.Session.PageSize()
	if v, ok := c.GetQuery("visible"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			abort(c, errx.Wrap(errx.ErrInvalidRequest, err))
			return
		}
		visible = n
	}

	order, err := catalog.ParseSortOrder(c.Query("sort"))
	if err != nil {
		logx.Debug().Err(err).Msg("unknown sort order, using default")
	}

	listing := h.Session.Catalog.List(catalog.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     order,
		Visible:  visible,
	})
	c.JSON(http.StatusOK, productList{
		Products: h.Session.Views(listing.Products),
		Total:    listing.Total,
		HasMore:  listing.HasMore,
	})
}

func (h *handler) getProduct(c *gin.Context) {
	v, err := h.Session.Product(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type categoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (h *handler) listCategories(c *gin.Context) {
	products := h.Session.Catalog.Products()
	names := catalog.Categories(products)
	out := make([]categoryCount, len(names))
	for i, name := range names {
		out[i] = categoryCount{Name: name, Count: catalog.CategoryCount(products, name)}
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Suggestions(c.Query("q")))
}

func (h *handler) bestSellers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Catalog.BestSellers())
}

// ----- Cart -----

func (h *handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Cart.Summary())
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errx.Wrap(errx.ErrInvalidRequest, err))
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if _, err := h.Session.AddToCart(c.Request.Context(), req.ProductID, qty); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Session.Cart.Summary())
}

type updateCartRequest struct {
	Quantity *int `json:"quantity"`
}

// updateCart sets the line quantity; zero or below removes the line.
func (h *handler) updateCart(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errx.Wrap(errx.ErrInvalidRequest, err))
		return
	}
	if req.Quantity == nil {
		abort(c, errx.Wrap(errx.ErrInvalidRequest, errors.New("quantity is required")))
		return
	}
	h.Session.UpdateQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, h.Session.Cart.Summary())
}

func (h *handler) removeCartItem(c *gin.Context) {
	h.Session.RemoveFromCart(c.Request.Context(), c.Param("productId"))
	c.JSON(http.StatusOK, h.Session.Cart.Summary())
}

func (h *handler) clearCart(c *gin.Context) {
	h.Session.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, h.Session.Cart.Summary())
}

// ----- Favorites -----

type favoritesResponse struct {
	IDs      []string            `json:"ids"`
	Products []model.ProductView `json:"products"`
	Count    int                 `json:"count"`
}

func (h *handler) getFavorites(c *gin.Context) {
	ids := h.Session.Favorites.Favorites()
	c.JSON(http.StatusOK, favoritesResponse{
		IDs:      ids,
		Products: h.Session.FavoriteProducts(),
		Count:    len(ids),
	})
}

func (h *handler) toggleFavorite(c *gin.Context) {
	id := c.Param("productId")
	on, err := h.Session.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"productId": id,
		"favorite":  on,
		"count":     h.Session.Favorites.Count(),
	})
}

// ----- Toast -----

func (h *handler) getToast(c *gin.Context) {
	t, ok := h.Session.Toasts.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handler) hideToast(c *gin.Context) {
	h.Session.Toasts.HideToast()
	c.Status(http.StatusNoContent)
}

// ----- Orders -----

func (h *handler) checkout(c *gin.Context) {
	var details model.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		abort(c, errx.Wrap(errx.ErrInvalidRequest, err))
		return
	}
	receipt, err := h.Checkout.Submit(c.Request.Context(), details)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// ----- Assistant -----

func (h *handler) assistantTools(c *gin.Context) {
	c.JSON(http.StatusOK, h.Assistant.ToolInfos())
}

type executeRequest struct {
	ConversationID string            `json:"conversationId"`
	ToolCalls      []schema.ToolCall `json:"toolCalls"`
}

func (h *handler) assistantExecute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errx.Wrap(errx.ErrInvalidRequest, err))
		return
	}
	msgs, err := h.Assistant.Execute(c.Request.Context(), req.ConversationID, req.ToolCalls)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *handler) assistantHistory(c *gin.Context) {
	t, err := h.Assistant.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handler) assistantClearHistory(c *gin.Context) {
	if err := h.Assistant.ClearHistory(c.Request.Context(), c.Param("id")); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
