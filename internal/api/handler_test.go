package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/agrimind/agrichat/config"
	"github.com/agrimind/agrichat/internal/feedback"
	"github.com/agrimind/agrichat/internal/knowledge"
	in_memory "github.com/agrimind/agrichat/internal/storage/in-memory"
	"github.com/agrimind/agrichat/internal/usecase"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	result usecase.Result
}

func (s *stubCompleter) Complete(_ context.Context, _ []openai.ChatCompletionMessage, _ float32) usecase.Result {
	return s.result
}

func newTestServer(t *testing.T, completer usecase.Completer) (http.Handler, *feedback.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	memory := usecase.NewConversationUsecase(in_memory.NewConversationStorage(10), logger)
	chat := usecase.NewChatUsecase(
		usecase.ChatUsecaseDeps{
			Memory:    memory,
			OpenAI:    completer,
			Knowledge: knowledge.NewBase(1),
		},
		config.Chat{Persona: "default", MaxAttachmentBytes: 8192},
		config.Memory{MaxTurns: 10, MaxContextTurns: 5},
		config.OpenAI{ModelTemperature: 0.7, CodeTemperature: 0.3, DocumentTemperature: 0.2},
		logger,
	)

	fb, err := feedback.NewLogger(filepath.Join(t.TempDir(), "feedback.ndjson"), 16, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fb.Close() })

	return NewRouter(NewHandler(chat, memory, fb, logger), logger), fb
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatLocalAnswer(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/chat", chatRequest{SessionID: "s1", Message: "2 + 2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "2.0 + 2.0 = 4.0", resp.Response)
	assert.Equal(t, "local", resp.Source)
	assert.NotEmpty(t, resp.MsgID)
}

func TestHandleChatMintsSessionID(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/chat", chatRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestHandleChatBadBody(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("not json")))
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHistoryRoundTrip(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{result: usecase.Result{Text: "Sow in late autumn."}})

	rec := postJSON(t, handler, "/api/chat", chatRequest{SessionID: "s2", Message: "when should I sow winter crops"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/s2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp historyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s2", resp.SessionID)
	require.Len(t, resp.Turns, 2)
	assert.Equal(t, "user", resp.Turns[0].Role)
	assert.Equal(t, "when should I sow winter crops", resp.Turns[0].Content)
	assert.Equal(t, "bot", resp.Turns[1].Role)
}

func TestHandleClearEmptiesSession(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/chat", chatRequest{SessionID: "s3", Message: "2 + 3"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, handler, "/api/clear", clearRequest{SessionID: "s3"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/s3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp historyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Turns)
}

func TestHandleClearRequiresSessionID(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/clear", clearRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFeedbackAccepted(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/feedback", feedbackRequest{
		SessionID: "s4",
		MsgID:     "abc-123",
		Feedback:  "helpful",
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHandleFeedbackRequiresFields(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := postJSON(t, handler, "/api/feedback", feedbackRequest{SessionID: "s4"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	handler, _ := newTestServer(t, &stubCompleter{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
