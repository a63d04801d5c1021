package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agrimind/agrichat/internal/model"
)

// AllContextTurns renders the whole retained history in GetContext.
const AllContextTurns = -1

const contextBanner = "Previous conversation:"

// ConversationStorage is the storage contract the memory layer needs.
// Implemented by the in-memory and redis-backed stores.
type ConversationStorage interface {
	AddMessage(ctx context.Context, sessionID string, role model.Role, content string) error
	GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error)
	Clear(ctx context.Context, sessionID string) error
}

// ConversationUsecase wraps a ConversationStorage with transcript
// rendering for prompt construction.
type ConversationUsecase struct {
	storage ConversationStorage
	logger  *slog.Logger
}

func NewConversationUsecase(storage ConversationStorage, logger *slog.Logger) *ConversationUsecase {
	return &ConversationUsecase{
		storage: storage,
		logger:  logger,
	}
}

func (c *ConversationUsecase) AddMessage(ctx context.Context, sessionID string, role model.Role, content string) error {
	return c.storage.AddMessage(ctx, sessionID, role, content)
}

func (c *ConversationUsecase) GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error) {
	return c.storage.GetHistory(ctx, sessionID)
}

func (c *ConversationUsecase) Clear(ctx context.Context, sessionID string) error {
	return c.storage.Clear(ctx, sessionID)
}

// GetContext renders the last maxContextTurns turns as a flat
// "User:"/"Bot:" transcript for prompt interpolation, distinct from
// GetHistory which feeds role-tagged message arrays. maxContextTurns of
// 0 and empty histories render as empty text; AllContextTurns renders
// everything retained. Storage read failures degrade to an empty
// transcript rather than failing the request.
func (c *ConversationUsecase) GetContext(ctx context.Context, sessionID string, maxContextTurns int) string {
	if maxContextTurns == 0 {
		return ""
	}

	history, err := c.storage.GetHistory(ctx, sessionID)
	if err != nil {
		c.logger.Warn("failed to read history for context", "session_id", sessionID, "error", err)
		return ""
	}
	if len(history) == 0 {
		return ""
	}

	if maxContextTurns > 0 {
		// Two messages per turn.
		messages := maxContextTurns * 2
		if len(history) > messages {
			history = history[len(history)-messages:]
		}
	}

	var b strings.Builder
	b.WriteString(contextBanner + "\n")
	for _, turn := range history {
		prefix := "User: "
		if turn.Role == model.RoleBot {
			prefix = "Bot: "
		}
		b.WriteString(prefix + turn.Content + "\n\n")
	}
	return b.String()
}
