package in_memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/agrimind/agrichat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundKeepsMostRecentTurns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewConversationStorage(3)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.AddMessage(ctx, "s1", model.RoleUser, fmt.Sprintf("u%d", i)))
		require.NoError(t, store.AddMessage(ctx, "s1", model.RoleBot, fmt.Sprintf("b%d", i)))
	}

	history, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 6)

	// The retained entries are the most recent ones in original order.
	assert.Equal(t, "u7", history[0].Content)
	assert.Equal(t, "b7", history[1].Content)
	assert.Equal(t, "u9", history[4].Content)
	assert.Equal(t, "b9", history[5].Content)
	assert.Equal(t, model.RoleUser, history[0].Role)
	assert.Equal(t, model.RoleBot, history[1].Role)
}

func TestUnknownSessionHasEmptyHistory(t *testing.T) {
	t.Parallel()

	store := NewConversationStorage(3)
	history, err := store.GetHistory(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewConversationStorage(3)

	require.NoError(t, store.Clear(ctx, "never-existed"))

	require.NoError(t, store.AddMessage(ctx, "s1", model.RoleUser, "hello"))
	require.NoError(t, store.Clear(ctx, "s1"))
	require.NoError(t, store.Clear(ctx, "s1"))

	history, err := store.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewConversationStorage(3)

	require.NoError(t, store.AddMessage(ctx, "a", model.RoleUser, "from a"))
	require.NoError(t, store.AddMessage(ctx, "b", model.RoleUser, "from b"))
	require.NoError(t, store.Clear(ctx, "a"))

	historyB, err := store.GetHistory(ctx, "b")
	require.NoError(t, err)
	require.Len(t, historyB, 1)
	assert.Equal(t, "from b", historyB[0].Content)
}

func TestConcurrentAppendsKeepBound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewConversationStorage(5)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			session := fmt.Sprintf("s%d", w%2)
			for i := 0; i < 50; i++ {
				_ = store.AddMessage(ctx, session, model.RoleUser, "u")
				_ = store.AddMessage(ctx, session, model.RoleBot, "b")
			}
		}(w)
	}
	wg.Wait()

	for _, session := range []string{"s0", "s1"} {
		history, err := store.GetHistory(ctx, session)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(history), 10)
	}
}
