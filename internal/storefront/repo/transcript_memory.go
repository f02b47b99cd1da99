package repo

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"

	"github.com/somascents/storefront/internal/storefront/model"
)

// MemoryTranscriptRepository keeps transcripts in process. Used when the
// snapshot backend is not Redis, and in tests.
type MemoryTranscriptRepository struct {
	mu          sync.RWMutex
	data        map[string][]*schema.Message
	maxMessages int
}

// NewMemoryTranscriptRepository keeps at most maxMessages per conversation;
// zero keeps everything.
func NewMemoryTranscriptRepository(maxMessages int) *MemoryTranscriptRepository {
	return &MemoryTranscriptRepository{data: make(map[string][]*schema.Message), maxMessages: maxMessages}
}

func (m *MemoryTranscriptRepository) Append(_ context.Context, conversationID string, messages ...*schema.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.data[conversationID]
	for _, msg := range messages {
		if msg == nil {
			continue
		}
		c := *msg
		stored = append(stored, &c)
	}
	if m.maxMessages > 0 && len(stored) > m.maxMessages {
		stored = append([]*schema.Message(nil), stored[len(stored)-m.maxMessages:]...)
	}
	if len(stored) > 0 {
		m.data[conversationID] = stored
	}
	return nil
}

func (m *MemoryTranscriptRepository) Load(_ context.Context, conversationID string) (*model.Transcript, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.data[conversationID]
	msgs := make([]*schema.Message, len(stored))
	for i, msg := range stored {
		c := *msg
		msgs[i] = &c
	}
	return &model.Transcript{ConversationID: conversationID, Messages: msgs}, nil
}

func (m *MemoryTranscriptRepository) Clear(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, conversationID)
	return nil
}

var _ model.TranscriptRepository = (*MemoryTranscriptRepository)(nil)
