// Package assistant exposes the storefront to a tool-calling shopping
// assistant: catalog lookups and cart/favorites actions as eino tools.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/session"
)

const (
	ToolSearchProduct     = "search_product"
	ToolListCategories    = "list_categories"
	ToolGetProductDetails = "get_product_details"
	ToolAddToCart         = "add_to_cart"
	ToolToggleFavorite    = "toggle_favorite"
	ToolViewCart          = "view_cart"

	defaultMaxResults = 10
	maxMaxResults     = 20

	DefaultHistoryTurns = 20
	DefaultMaxToolCalls = 10
)

// ===================================
// Search Product Tool
// ===================================

type SearchProductInput struct {
	Query      string `json:"query"`
	Category   string `json:"category,omitempty"`
	Sort       string `json:"sort,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchProductOutput struct {
	Products []model.ProductView `json:"products"`
	Total    int                 `json:"total"`
}

func createSearchProductTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Search the candle catalog by keyword across name, description and scent. Returns product id, name, price, discount and favorite flag. Use this whenever the customer describes a candle or a scent.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Search keywords, e.g. rose, lavender, bouquet, jar.",
					Required: true,
				},
				"category": {
					Type: "string",
					Desc: "Optional scent category, exactly as returned by list_categories (e.g. Floral, Rose).",
				},
				"sort": {
					Type: "string",
					Desc: "Optional order: default, price-low, price-high or name.",
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of products to return (default: 10, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if strings.TrimSpace(in.Query) == "" {
				return nil, fmt.Errorf("query is required")
			}
			if in.MaxResults <= 0 {
				in.MaxResults = defaultMaxResults
			}
			order, _ := catalog.ParseSortOrder(in.Sort)

			listing := s.Catalog.List(catalog.Query{
				Category: in.Category,
				Search:   in.Query,
				Sort:     order,
				Visible:  in.MaxResults,
			})
			return &SearchProductOutput{
				Products: s.Views(listing.Products),
				Total:    listing.Total,
			}, nil
		},
	)
}

// ===================================
// List Categories Tool
// ===================================

type ListCategoriesInput struct{}

type CategoryInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ListCategoriesOutput struct {
	Categories []CategoryInfo `json:"categories"`
}

func createListCategoriesTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        ToolListCategories,
			Desc:        "List the scent categories of the catalog with the number of candles in each.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
			products := s.Catalog.Products()
			names := catalog.Categories(products)
			out := &ListCategoriesOutput{Categories: make([]CategoryInfo, len(names))}
			for i, name := range names {
				out.Categories[i] = CategoryInfo{Name: name, Count: catalog.CategoryCount(products, name)}
			}
			return out, nil
		},
	)
}

// ===================================
// Product Details Tool
// ===================================

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

func createGetProductDetailsTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get the full record of one candle: description, scents, images, price, original price and pack price.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID from search_product results. Must be exact.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*model.ProductView, error) {
			if in.ProductID == "" {
				return nil, errx.ErrMissingProductID
			}
			v, err := s.Product(in.ProductID)
			if err != nil {
				return nil, fmt.Errorf("product %s: %w", in.ProductID, err)
			}
			return &v, nil
		},
	)
}

// ===================================
// Cart Tools
// ===================================

type AddToCartInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}

type CartOutput struct {
	Lines      []model.CartLine `json:"lines"`
	TotalPrice int              `json:"total_price"`
	TotalItems int              `json:"total_items"`
}

func cartOutput(s *session.Session) *CartOutput {
	sum := s.Cart.Summary()
	return &CartOutput{Lines: sum.Lines, TotalPrice: sum.TotalPrice, TotalItems: sum.TotalItems}
}

func createAddToCartTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolAddToCart,
			Desc: "Add a candle to the customer's cart. Adding a candle already in the cart increases its quantity.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID from search_product results.",
					Required: true,
				},
				"quantity": {
					Type: "number",
					Desc: "How many to add (default: 1).",
				},
			}),
		},
		func(ctx context.Context, in *AddToCartInput) (*CartOutput, error) {
			if in.Quantity == 0 {
				in.Quantity = 1
			}
			if _, err := s.AddToCart(ctx, in.ProductID, in.Quantity); err != nil {
				return nil, err
			}
			return cartOutput(s), nil
		},
	)
}

type ViewCartInput struct{}

func createViewCartTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        ToolViewCart,
			Desc:        "Show the cart lines with their quantities and the cart totals.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, _ *ViewCartInput) (*CartOutput, error) {
			return cartOutput(s), nil
		},
	)
}

// ===================================
// Favorites Tool
// ===================================

type ToggleFavoriteInput struct {
	ProductID string `json:"product_id"`
}

type ToggleFavoriteOutput struct {
	ProductID string `json:"product_id"`
	Favorite  bool   `json:"favorite"`
	Count     int    `json:"count"`
}

func createToggleFavoriteTool(s *session.Session) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolToggleFavorite,
			Desc: "Mark a candle as favorite, or unmark it if it already is.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID from search_product results.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
			on, err := s.ToggleFavorite(ctx, in.ProductID)
			if err != nil {
				return nil, err
			}
			return &ToggleFavoriteOutput{ProductID: in.ProductID, Favorite: on, Count: s.Favorites.Count()}, nil
		},
	)
}

// GetStorefrontTools returns every assistant tool bound to s.
func GetStorefrontTools(s *session.Session) []tool.BaseTool {
	return []tool.BaseTool{
		createSearchProductTool(s),
		createListCategoriesTool(s),
		createGetProductDetailsTool(s),
		createAddToCartTool(s),
		createViewCartTool(s),
		createToggleFavoriteTool(s),
	}
}

// GetToolInfos collects the schema of each tool.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
