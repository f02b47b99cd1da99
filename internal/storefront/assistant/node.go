package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/observers"
	"github.com/somascents/storefront/internal/storefront/repo"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Executor runs model-issued tool calls against the storefront and records
// each exchange in the conversation's transcript.
type Executor struct {
	node         *compose.ToolsNode
	infos        []*schema.ToolInfo
	callbacks    einocb.Handler
	transcripts  model.TranscriptRepository
	historyTurns int
	maxToolCalls int
}

// NewExecutor builds the tools node over tools. A nil transcripts
// repository keeps transcripts in memory.
func NewExecutor(ctx context.Context, tools []tool.BaseTool, transcripts model.TranscriptRepository, cfg model.AssistantConfig) (*Executor, error) {
	if transcripts == nil {
		transcripts = repo.NewMemoryTranscriptRepository(normalize(cfg.HistoryTurns, DefaultHistoryTurns))
	}

	infos, err := GetToolInfos(ctx, tools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return nil, fmt.Errorf("failed to get tool infos: %w", err)
	}

	node, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:               reportFailures(tools),
		ExecuteSequentially: true,
		UnknownToolsHandler: func(ctx context.Context, name, input string) (string, error) {
			logx.Warn().
				Str("tool_name", name).
				Str("arguments", input).
				Msg("Unknown or invalid tool call; returning fallback result")
			return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", name), nil
		},
		ToolArgumentsHandler: func(ctx context.Context, name, arguments string) (string, error) {
			return SanitizeArguments(name, arguments), nil
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Failed to create tools node")
		return nil, fmt.Errorf("failed to create tools node: %w", err)
	}
	return &Executor{
		node:         node,
		infos:        infos,
		callbacks:    observers.NewToolCallbacks(),
		transcripts:  transcripts,
		historyTurns: normalize(cfg.HistoryTurns, DefaultHistoryTurns),
		maxToolCalls: normalize(cfg.MaxToolCalls, DefaultMaxToolCalls),
	}, nil
}

// ToolInfos describes the available tools.
func (e *Executor) ToolInfos() []*schema.ToolInfo {
	return e.infos
}

// Execute runs calls in order and returns one tool message per call. A
// failing call yields an error result instead of failing the batch. When
// conversationID is set the call message and the results are appended to
// its transcript.
func (e *Executor) Execute(ctx context.Context, conversationID string, calls []schema.ToolCall) ([]*schema.Message, error) {
	if len(calls) == 0 {
		return []*schema.Message{}, nil
	}
	if len(calls) > e.maxToolCalls {
		logx.Warn().Int("calls", len(calls)).Int("max", e.maxToolCalls).Msg("tool call limit exceeded")
		return nil, errx.ErrToolCallLimit
	}
	for i := range calls {
		if calls[i].ID == "" {
			calls[i].ID = fmt.Sprintf("call-%d", i+1)
		}
		if calls[i].Type == "" {
			calls[i].Type = "function"
		}
	}
	ctx = einocb.InitCallbacks(ctx, &einocb.RunInfo{
		Name:      "storefront_assistant",
		Component: compose.ComponentOfToolsNode,
	}, e.callbacks)
	callMsg := schema.AssistantMessage("", calls)
	out, err := e.node.Invoke(ctx, callMsg)
	if err != nil {
		logx.Error().Err(err).Int("calls", len(calls)).Msg("tool execution failed")
		return nil, err
	}

	if conversationID != "" {
		record := append([]*schema.Message{callMsg}, out...)
		if err := e.transcripts.Append(ctx, conversationID, record...); err != nil {
			// The actions already happened; a lost transcript entry is not fatal.
			logx.Warn().Err(err).Str("conversationID", conversationID).Msg("failed to record tool exchange")
		}
	}
	return out, nil
}

// History returns the last exchanges of a conversation, bounded by the
// configured number of turns.
func (e *Executor) History(ctx context.Context, conversationID string) (*model.Transcript, error) {
	t, err := e.transcripts.Load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	t.Messages = trimTail(t.Messages, e.historyTurns)
	return t, nil
}

// ClearHistory forgets a conversation.
func (e *Executor) ClearHistory(ctx context.Context, conversationID string) error {
	return e.transcripts.Clear(ctx, conversationID)
}

// failureResultTool turns a failing tool run into a JSON result so one bad
// call in a batch does not discard the results of the calls before it.
type failureResultTool struct {
	tool.InvokableTool
}

func (t failureResultTool) InvokableRun(ctx context.Context, arguments string, opts ...tool.Option) (string, error) {
	out, err := t.InvokableTool.InvokableRun(ctx, arguments, opts...)
	if err == nil {
		return out, nil
	}
	name := ""
	if info, infoErr := t.Info(ctx); infoErr == nil {
		name = info.Name
	}
	logx.Warn().Err(err).Str("tool_name", name).Str("arguments", arguments).Msg("tool call failed; returning error result")
	return failureResult(name, err), nil
}

func failureResult(name string, err error) string {
	message := err.Error()
	var appErr *errx.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	b, mErr := json.Marshal(map[string]any{
		"error":   "tool_failed",
		"name":    name,
		"message": message,
		"status":  errx.StatusOf(err),
	})
	if mErr != nil {
		return fmt.Sprintf("{\"error\":\"tool_failed\",\"name\":%q}", name)
	}
	return string(b)
}

func reportFailures(tools []tool.BaseTool) []tool.BaseTool {
	out := make([]tool.BaseTool, len(tools))
	for i, t := range tools {
		if it, ok := t.(tool.InvokableTool); ok {
			out[i] = failureResultTool{InvokableTool: it}
			continue
		}
		out[i] = t
	}
	return out
}

func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if len(messages) <= maxTurns {
		return messages
	}
	return append([]*schema.Message(nil), messages[len(messages)-maxTurns:]...)
}

// SanitizeArguments normalises model-produced arguments: trims strings,
// coerces numbers given as strings and clamps ranges. Arguments that are
// not a JSON object are passed through untouched.
func SanitizeArguments(name, arguments string) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(arguments), &m); err != nil {
		return arguments
	}

	switch name {
	case ToolSearchProduct:
		trimString(m, "query", true)
		trimString(m, "category", false)
		trimString(m, "sort", false)
		clampNumber(m, "max_results", 1, maxMaxResults)
	case ToolGetProductDetails, ToolToggleFavorite:
		trimString(m, "product_id", true)
	case ToolAddToCart:
		trimString(m, "product_id", true)
		clampNumber(m, "quantity", 1, 99)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return arguments
	}
	return string(b)
}

// trimString trims m[key]. Non-strings are stringified when coerce is set
// and dropped otherwise.
func trimString(m map[string]any, key string, coerce bool) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case string:
		m[key] = strings.TrimSpace(vv)
	default:
		if coerce {
			m[key] = strings.TrimSpace(fmt.Sprint(v))
		} else {
			delete(m, key)
		}
	}
}

func clampNumber(m map[string]any, key string, lo, hi int) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case float64:
		m[key] = clampInt(int(vv), lo, hi)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
			m[key] = clampInt(n, lo, hi)
		} else {
			delete(m, key)
		}
	default:
		delete(m, key)
	}
}

// normalize returns def when n is not positive.
func normalize(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
