package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/agrimind/agrichat/config"
	"github.com/agrimind/agrichat/internal/knowledge"
	"github.com/agrimind/agrichat/internal/model"
	in_memory "github.com/agrimind/agrichat/internal/storage/in-memory"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	result   Result
	calls    int
	lastMsgs []openai.ChatCompletionMessage
	lastTemp float32
}

func (f *fakeCompleter) Complete(_ context.Context, messages []openai.ChatCompletionMessage, temperature float32) Result {
	f.calls++
	f.lastMsgs = messages
	f.lastTemp = temperature
	return f.result
}

func newChatUsecase(t *testing.T, completer Completer) (*ChatUsecase, *ConversationUsecase) {
	t.Helper()

	memory := NewConversationUsecase(in_memory.NewConversationStorage(10), slog.Default())
	chat := NewChatUsecase(
		ChatUsecaseDeps{
			Memory:    memory,
			OpenAI:    completer,
			Knowledge: knowledge.NewBase(1),
		},
		config.Chat{Persona: "default", MaxAttachmentBytes: 64},
		config.Memory{MaxTurns: 10, MaxContextTurns: 5},
		config.OpenAI{ModelTemperature: 0.7, CodeTemperature: 0.3, DocumentTemperature: 0.2},
		slog.Default(),
	)
	return chat, memory
}

func TestArithmeticAnsweredLocallyWithoutRemoteCall(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	chat, memory := newChatUsecase(t, fake)
	ctx := context.Background()

	reply := chat.HandleMessage(ctx, ChatRequest{SessionID: "s1", Message: "2 + 2"})

	assert.Equal(t, "2.0 + 2.0 = 4.0", reply.Text)
	assert.Equal(t, ReplySourceLocal, reply.Source)
	assert.Zero(t, fake.calls)

	history, err := memory.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.Turn{Role: model.RoleUser, Content: "2 + 2"}, history[0])
	assert.Equal(t, model.Turn{Role: model.RoleBot, Content: "2.0 + 2.0 = 4.0"}, history[1])
}

func TestRemoteFailureSubstitutesPersonaErrorAndStoresIt(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{result: Result{Failure: FailureTimeout}}
	chat, memory := newChatUsecase(t, fake)
	ctx := context.Background()

	reply := chat.HandleMessage(ctx, ChatRequest{SessionID: "s1", Message: "tell me a story about rain"})

	wantErr := MessageModelUnavailable.Text("default")
	assert.Equal(t, wantErr, reply.Text)
	assert.Equal(t, 1, fake.calls)

	history, err := memory.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.RoleBot, history[1].Role)
	assert.Equal(t, wantErr, history[1].Content)
}

func TestEmptyMessageNudgeWithoutMemoryWrite(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	chat, memory := newChatUsecase(t, fake)
	ctx := context.Background()

	reply := chat.HandleMessage(ctx, ChatRequest{SessionID: "s1", Message: "   "})

	assert.Equal(t, MessageEmpty.Text("default"), reply.Text)
	assert.Zero(t, fake.calls)

	history, err := memory.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCodePathUsesCodeTemperatureAndShapesReply(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{result: Result{Text: "```python\ndef add(a, b):\n    return a + b\n```"}}
	chat, _ := newChatUsecase(t, fake)

	reply := chat.HandleMessage(context.Background(), ChatRequest{
		SessionID: "s1",
		Message:   "write a bubble sort function in Python",
	})

	assert.Equal(t, ReplySourceCode, reply.Source)
	assert.Equal(t, float32(0.3), fake.lastTemp)
	assert.Contains(t, reply.Text, "## Problem Analysis")
	assert.Contains(t, reply.Text, "```python")
	assert.Equal(t, "python", reply.Language)

	// System prompt came from the composer's python template.
	require.Len(t, fake.lastMsgs, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastMsgs[0].Role)
	assert.Contains(t, fake.lastMsgs[0].Content, "expert Python programmer")
	assert.Contains(t, fake.lastMsgs[1].Content, "Generate python code for:")
}

func TestDocumentPathUsesDocumentTemperature(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{result: Result{Text: "Dear Sir or Madam, ..."}}
	chat, _ := newChatUsecase(t, fake)

	reply := chat.HandleMessage(context.Background(), ChatRequest{
		SessionID: "s1",
		Message:   "draft a cover letter for a farm manager job",
	})

	assert.Equal(t, ReplySourceDocument, reply.Source)
	assert.Equal(t, float32(0.2), fake.lastTemp)
	assert.Contains(t, reply.Text, "## Document Guide")
}

func TestGeneralPathCarriesHistoryMessages(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{result: Result{Text: "Sow in November."}}
	chat, memory := newChatUsecase(t, fake)
	ctx := context.Background()

	require.NoError(t, memory.AddMessage(ctx, "s1", model.RoleUser, "i grow wheat"))
	require.NoError(t, memory.AddMessage(ctx, "s1", model.RoleBot, "noted"))

	reply := chat.HandleMessage(ctx, ChatRequest{SessionID: "s1", Message: "when do i plant it"})

	assert.Equal(t, ReplySourceModel, reply.Source)
	assert.Equal(t, float32(0.7), fake.lastTemp)

	// system + 2 history turns + current question
	require.Len(t, fake.lastMsgs, 4)
	assert.Equal(t, openai.ChatMessageRoleAssistant, fake.lastMsgs[2].Role)
	assert.Equal(t, "when do i plant it", fake.lastMsgs[3].Content)
}

func TestOversizedAttachmentBecomesSkippedNote(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{result: Result{Text: "ok"}}
	chat, memory := newChatUsecase(t, fake)
	ctx := context.Background()

	big := make([]byte, 100)
	for i := range big {
		big[i] = 'a'
	}

	chat.HandleMessage(ctx, ChatRequest{
		SessionID:  "s1",
		Message:    "summarize my soil sample please, any thoughts",
		Attachment: string(big),
	})

	require.Equal(t, 1, fake.calls)
	last := fake.lastMsgs[len(fake.lastMsgs)-1].Content
	assert.Contains(t, last, "[attachment skipped")
	assert.NotContains(t, last, string(big))

	// Memory retains the typed message only, not the attachment note.
	history, err := memory.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "summarize my soil sample please, any thoughts", history[0].Content)
}
