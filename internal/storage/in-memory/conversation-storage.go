package in_memory

import (
	"context"
	"sync"

	"github.com/agrimind/agrichat/internal/model"
)

// ConversationStorage keeps bounded per-session history in process
// memory. The mutex serializes appends so the bound trim cannot
// interleave between concurrent requests for the same session;
// different sessions only contend on the map itself.
type ConversationStorage struct {
	mu            sync.RWMutex
	conversations map[string][]model.Turn
	maxTurns      int
}

// NewConversationStorage bounds each session at maxTurns turns, where
// one turn is a user message plus a bot message.
func NewConversationStorage(maxTurns int) *ConversationStorage {
	return &ConversationStorage{
		conversations: make(map[string][]model.Turn),
		maxTurns:      maxTurns,
	}
}

func (s *ConversationStorage) AddMessage(_ context.Context, sessionID string, role model.Role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.conversations[sessionID], model.Turn{Role: role, Content: content})

	// Drop the oldest user+bot pair once the bound is exceeded.
	if len(turns) > s.maxTurns*2 {
		turns = turns[2:]
	}
	s.conversations[sessionID] = turns
	return nil
}

func (s *ConversationStorage) GetHistory(_ context.Context, sessionID string) ([]model.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.conversations[sessionID]
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Clear removes all history for the session. Clearing an absent session
// is a no-op.
func (s *ConversationStorage) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, sessionID)
	return nil
}
