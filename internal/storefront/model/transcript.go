package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

type TranscriptRepository interface {
	// Append adds messages to the transcript of the given conversation
	Append(ctx context.Context, conversationID string, messages ...*schema.Message) error

	// Load retrieves the transcript of a conversation
	Load(ctx context.Context, conversationID string) (*Transcript, error)

	// Clear removes the transcript of a conversation
	Clear(ctx context.Context, conversationID string) error
}

// Transcript is the recorded assistant exchange of one conversation.
type Transcript struct {
	ConversationID string            `json:"conversationId"`
	Messages       []*schema.Message `json:"messages"`
}
