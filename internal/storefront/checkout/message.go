package checkout

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/observers"
)

//go:embed template/admin_message.txt
var adminTemplate string

//go:embed template/customer_message.txt
var customerTemplate string

var renderCallbacks = observers.NewPromptCallbacks()

// ItemsText renders one "<name> x <qty> - ₹<subtotal>" row per line.
func ItemsText(lines []model.CartLine) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = fmt.Sprintf("%s x %d - ₹%d", l.Name, l.Quantity, l.Subtotal())
	}
	return strings.Join(rows, "\n")
}

// AdminMessage renders the new-order notification for the shop owner.
func AdminMessage(ctx context.Context, details model.CustomerDetails, summary model.CartSummary) (string, error) {
	return render(ctx, "admin_message", adminTemplate, map[string]any{
		"Name":    details.Name,
		"Email":   details.Email,
		"Phone":   details.Phone,
		"Address": details.Address,
		"Items":   ItemsText(summary.Lines),
		"Total":   summary.TotalPrice,
	})
}

// CustomerMessage renders the order confirmation sent to the customer.
func CustomerMessage(ctx context.Context, storeName string, details model.CustomerDetails, summary model.CartSummary) (string, error) {
	return render(ctx, "customer_message", customerTemplate, map[string]any{
		"StoreName": storeName,
		"Name":      details.Name,
		"Items":     ItemsText(summary.Lines),
		"Total":     summary.TotalPrice,
	})
}

func render(ctx context.Context, name, text string, vars map[string]any) (string, error) {
	ctx = einocb.InitCallbacks(ctx, &einocb.RunInfo{Name: name, Component: components.ComponentOfPrompt}, renderCallbacks)
	tpl := prompt.FromMessages(schema.GoTemplate, schema.UserMessage(text))
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("order message render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("order message render: empty result")
	}
	return strings.TrimSpace(msgs[0].Content), nil
}
