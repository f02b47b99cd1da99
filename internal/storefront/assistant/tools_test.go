package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/repo"
	"github.com/somascents/storefront/internal/storefront/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(context.Background(), catalog.Default(), repo.NewMemoryStore(), model.StoreConfig{ToastDuration: time.Minute})
	t.Cleanup(s.Close)
	return s
}

func findTool(t *testing.T, tools []tool.BaseTool, name string) tool.InvokableTool {
	t.Helper()
	for _, bt := range tools {
		info, err := bt.Info(context.Background())
		require.NoError(t, err)
		if info.Name == name {
			it, ok := bt.(tool.InvokableTool)
			require.True(t, ok)
			return it
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func run[T any](t *testing.T, it tool.InvokableTool, args string) T {
	t.Helper()
	raw, err := it.InvokableRun(context.Background(), args)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestGetToolInfos(t *testing.T) {
	infos, err := GetToolInfos(context.Background(), GetStorefrontTools(newSession(t)))
	require.NoError(t, err)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.ElementsMatch(t, []string{
		ToolSearchProduct, ToolListCategories, ToolGetProductDetails,
		ToolAddToCart, ToolViewCart, ToolToggleFavorite,
	}, names)
}

func TestSearchProductTool(t *testing.T) {
	s := newSession(t)
	it := findTool(t, GetStorefrontTools(s), ToolSearchProduct)

	out := run[SearchProductOutput](t, it, `{"query":"lavender","sort":"price-low","max_results":2}`)
	require.Len(t, out.Products, 2)
	assert.Greater(t, out.Total, 2)
	assert.LessOrEqual(t, out.Products[0].Price, out.Products[1].Price)

	_, err := it.InvokableRun(context.Background(), `{"query":"  "}`)
	assert.Error(t, err)
}

func TestListCategoriesTool(t *testing.T) {
	s := newSession(t)
	it := findTool(t, GetStorefrontTools(s), ToolListCategories)

	out := run[ListCategoriesOutput](t, it, `{}`)
	require.NotEmpty(t, out.Categories)
	assert.Equal(t, "Floral", out.Categories[0].Name)
	assert.Equal(t, catalog.CategoryCount(s.Catalog.Products(), "Floral"), out.Categories[0].Count)
}

func TestProductDetailsTool(t *testing.T) {
	s := newSession(t)
	it := findTool(t, GetStorefrontTools(s), ToolGetProductDetails)

	out := run[model.ProductView](t, it, `{"product_id":"1"}`)
	assert.Equal(t, "Shades of Nature", out.Name)
	assert.Equal(t, 20, out.DiscountPercent)

	_, err := it.InvokableRun(context.Background(), `{"product_id":"missing"}`)
	assert.Error(t, err)
}

func TestCartAndFavoriteTools(t *testing.T) {
	s := newSession(t)
	tools := GetStorefrontTools(s)

	cart := run[CartOutput](t, findTool(t, tools, ToolAddToCart), `{"product_id":"6","quantity":2}`)
	assert.Equal(t, 158, cart.TotalPrice)
	assert.Equal(t, 2, cart.TotalItems)

	cart = run[CartOutput](t, findTool(t, tools, ToolAddToCart), `{"product_id":"6"}`)
	assert.Equal(t, 3, cart.TotalItems, "quantity defaults to one")

	cart = run[CartOutput](t, findTool(t, tools, ToolViewCart), `{}`)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 237, cart.TotalPrice)

	fav := run[ToggleFavoriteOutput](t, findTool(t, tools, ToolToggleFavorite), `{"product_id":"6"}`)
	assert.True(t, fav.Favorite)
	assert.Equal(t, 1, fav.Count)
	assert.True(t, s.Favorites.IsFavorite("6"))
}

func TestExecutor_RunsCallsInOrder(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	exec, err := NewExecutor(ctx, GetStorefrontTools(s), repo.NewMemoryTranscriptRepository(0), model.AssistantConfig{HistoryTurns: 3})
	require.NoError(t, err)
	assert.Len(t, exec.ToolInfos(), 6)

	msgs, err := exec.Execute(ctx, "conv-1", []schema.ToolCall{
		{Function: schema.FunctionCall{Name: ToolAddToCart, Arguments: `{"product_id":" 2 ","quantity":"3"}`}},
		{Function: schema.FunctionCall{Name: "order_pizza", Arguments: `{}`}},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, "call-1", msgs[0].ToolCallID)
	var cart CartOutput
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Content), &cart))
	assert.Equal(t, 600, cart.TotalPrice)

	assert.Contains(t, msgs[1].Content, "unknown_tool")
	assert.Equal(t, 3, s.Cart.TotalItems())

	history, err := exec.History(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 3, "call message plus one result per call")
	assert.Equal(t, schema.Assistant, history.Messages[0].Role)
	assert.Equal(t, schema.Tool, history.Messages[1].Role)
}

func TestExecutor_FailedCallKeepsBatchResults(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	exec, err := NewExecutor(ctx, GetStorefrontTools(s), repo.NewMemoryTranscriptRepository(0), model.AssistantConfig{})
	require.NoError(t, err)

	msgs, err := exec.Execute(ctx, "conv-3", []schema.ToolCall{
		{Function: schema.FunctionCall{Name: ToolAddToCart, Arguments: `{"product_id":"1","quantity":2}`}},
		{Function: schema.FunctionCall{Name: ToolAddToCart, Arguments: `{"product_id":"nope"}`}},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	var cart CartOutput
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Content), &cart))
	assert.Equal(t, 2, cart.TotalItems)

	var failure struct {
		Error   string `json:"error"`
		Name    string `json:"name"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(msgs[1].Content), &failure))
	assert.Equal(t, "tool_failed", failure.Error)
	assert.Equal(t, ToolAddToCart, failure.Name)
	assert.Equal(t, errx.ProductNotFoundMessage, failure.Message)
	assert.Equal(t, http.StatusNotFound, failure.Status)

	assert.Equal(t, 2, s.Cart.TotalItems())

	history, err := exec.History(ctx, "conv-3")
	require.NoError(t, err)
	assert.Len(t, history.Messages, 3, "the exchange is recorded despite the failure")
}

func TestExecutor_HistoryKeepsLastTurns(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	exec, err := NewExecutor(ctx, GetStorefrontTools(s), nil, model.AssistantConfig{HistoryTurns: 2, MaxToolCalls: 2})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := exec.Execute(ctx, "conv-2", []schema.ToolCall{
			{Function: schema.FunctionCall{Name: ToolViewCart, Arguments: `{}`}},
		})
		require.NoError(t, err)
	}

	history, err := exec.History(ctx, "conv-2")
	require.NoError(t, err)
	assert.Len(t, history.Messages, 2)

	_, err = exec.Execute(ctx, "", []schema.ToolCall{
		{Function: schema.FunctionCall{Name: ToolViewCart, Arguments: `{}`}},
	})
	require.NoError(t, err)

	require.NoError(t, exec.ClearHistory(ctx, "conv-2"))
	history, err = exec.History(ctx, "conv-2")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)

	msgs, err := exec.Execute(ctx, "conv-2", nil)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	view := schema.ToolCall{Function: schema.FunctionCall{Name: ToolViewCart, Arguments: `{}`}}
	_, err = exec.Execute(ctx, "conv-2", []schema.ToolCall{view, view, view})
	assert.ErrorIs(t, err, errx.ErrToolCallLimit)
}

func TestSanitizeArguments(t *testing.T) {
	cases := []struct {
		name string
		tool string
		in   string
		want map[string]any
	}{
		{
			name: "search trims and clamps",
			tool: ToolSearchProduct,
			in:   `{"query":"  rose ","category":7,"max_results":"50"}`,
			want: map[string]any{"query": "rose", "max_results": float64(20)},
		},
		{
			name: "numeric product id is stringified",
			tool: ToolGetProductDetails,
			in:   `{"product_id":12}`,
			want: map[string]any{"product_id": "12"},
		},
		{
			name: "quantity below one",
			tool: ToolAddToCart,
			in:   `{"product_id":"1","quantity":-4}`,
			want: map[string]any{"product_id": "1", "quantity": float64(1)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(SanitizeArguments(tc.tool, tc.in)), &got))
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, "not json", SanitizeArguments(ToolSearchProduct, "not json"))
}
