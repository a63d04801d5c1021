package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agrimind/agrichat/internal/model"
	"github.com/redis/go-redis/v9"
)

type turnInternal struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conversationInternal struct {
	SessionID string         `json:"session_id"`
	Turns     []turnInternal `json:"turns"`
}

// ConversationStorage persists bounded per-session history as one JSON
// blob per session id in redis.
type ConversationStorage struct {
	rdb      *redis.Client
	maxTurns int
}

func NewConversationStorage(rdb *redis.Client, maxTurns int) *ConversationStorage {
	return &ConversationStorage{
		rdb:      rdb,
		maxTurns: maxTurns,
	}
}

func (s *ConversationStorage) AddMessage(ctx context.Context, sessionID string, role model.Role, content string) error {
	conv, err := s.getConversationInt(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get conversation %s: %w", sessionID, err)
	}

	conv.Turns = append(conv.Turns, turnInternal{Role: string(role), Content: content})
	if len(conv.Turns) > s.maxTurns*2 {
		conv.Turns = conv.Turns[2:]
	}

	if err := s.setConversationInt(ctx, sessionID, conv); err != nil {
		return fmt.Errorf("failed to set conversation %s: %w", sessionID, err)
	}
	return nil
}

func (s *ConversationStorage) GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error) {
	conv, err := s.getConversationInt(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %s: %w", sessionID, err)
	}

	turns := make([]model.Turn, 0, len(conv.Turns))
	for _, t := range conv.Turns {
		turns = append(turns, model.Turn{Role: model.ParseRole(t.Role), Content: t.Content})
	}
	return turns, nil
}

func (s *ConversationStorage) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, getConversationKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation %s: %w", sessionID, err)
	}
	return nil
}

// getConversationInt returns an empty conversation for an unknown
// session id; a missing session is never an error.
func (s *ConversationStorage) getConversationInt(ctx context.Context, sessionID string) (conversationInternal, error) {
	raw, err := s.rdb.Get(ctx, getConversationKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return conversationInternal{SessionID: sessionID}, nil
		}
		return conversationInternal{}, err
	}

	var conv conversationInternal
	if err := json.Unmarshal([]byte(raw), &conv); err != nil {
		return conversationInternal{}, fmt.Errorf("failed to unmarshal conversation %s: %w", sessionID, err)
	}
	return conv, nil
}

func (s *ConversationStorage) setConversationInt(ctx context.Context, sessionID string, conv conversationInternal) error {
	convJSON, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}
	if err := s.rdb.Set(ctx, getConversationKey(sessionID), convJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save conversation %s: %w", sessionID, err)
	}
	return nil
}

func getConversationKey(sessionID string) string {
	return fmt.Sprintf("conversation_%s", sessionID)
}
