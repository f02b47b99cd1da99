package observers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"

	"github.com/somascents/storefront/internal/core"
	logx "github.com/somascents/storefront/pkg/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logx.Init(logx.LoggerOpts{Environment: core.Development, Output: &buf})
	t.Cleanup(func() { logx.Init(logx.LoggerOpts{Environment: core.Testing}) })
	return &buf
}

func TestToolCallbacks_LogLifecycle(t *testing.T) {
	buf := captureLogs(t)
	h := NewToolCallbacks()
	ctx := context.Background()
	info := &einocb.RunInfo{Name: "search_product", Component: components.ComponentOfTool}

	h.OnStart(ctx, info, &tool.CallbackInput{ArgumentsInJSON: `{"query":"rose"}`})
	h.OnEnd(ctx, info, &tool.CallbackOutput{Response: `{"total":3}`})
	h.OnError(ctx, info, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "tool start")
	assert.Contains(t, out, "search_product")
	assert.Contains(t, out, "tool end")
	assert.Contains(t, out, "tool execution failed")
}

func TestPromptCallbacks_LogLifecycle(t *testing.T) {
	buf := captureLogs(t)
	h := NewAllCallbacks()
	ctx := context.Background()
	info := &einocb.RunInfo{Name: "admin_message", Component: components.ComponentOfPrompt}

	h.OnStart(ctx, info, &prompt.CallbackInput{Variables: map[string]any{"Name": "Asha"}})
	h.OnEnd(ctx, info, &prompt.CallbackOutput{Result: []*schema.Message{schema.UserMessage("hello")}})

	out := buf.String()
	assert.Contains(t, out, "render start")
	assert.Contains(t, out, "admin_message")
	assert.Contains(t, out, "render end")
}
