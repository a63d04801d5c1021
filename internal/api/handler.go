// Package api provides the HTTP handlers for the chat API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agrimind/agrichat/internal/feedback"
	"github.com/agrimind/agrichat/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	chat     *usecase.ChatUsecase
	memory   *usecase.ConversationUsecase
	feedback *feedback.Logger
	logger   *slog.Logger
}

func NewHandler(chat *usecase.ChatUsecase, memory *usecase.ConversationUsecase, fb *feedback.Logger, logger *slog.Logger) *Handler {
	return &Handler{
		chat:     chat,
		memory:   memory,
		feedback: fb,
		logger:   logger,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

type chatRequest struct {
	SessionID  string `json:"session_id"`
	Message    string `json:"message"`
	Attachment string `json:"attachment,omitempty"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	MsgID     string `json:"msg_id"`
	Response  string `json:"response"`
	Source    string `json:"source"`
	Language  string `json:"language,omitempty"`
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request format")
		return
	}

	// The session id is an opaque key; mint one for new sessions so the
	// client can carry it forward.
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply := h.chat.HandleMessage(
		r.Context(), usecase.ChatRequest{
			SessionID:  req.SessionID,
			Message:    req.Message,
			Attachment: req.Attachment,
		},
	)

	JSON(w, http.StatusOK, chatResponse{
		SessionID: req.SessionID,
		MsgID:     reply.MsgID,
		Response:  reply.Text,
		Source:    string(reply.Source),
		Language:  reply.Language,
	})
}

type turnInfo struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type historyResponse struct {
	SessionID string     `json:"session_id"`
	Turns     []turnInfo `json:"turns"`
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		Error(w, http.StatusBadRequest, "session id is required")
		return
	}

	history, err := h.memory.GetHistory(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to load history", "session_id", sessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	turns := make([]turnInfo, 0, len(history))
	for _, turn := range history {
		turns = append(turns, turnInfo{Role: string(turn.Role), Content: turn.Content})
	}
	JSON(w, http.StatusOK, historyResponse{SessionID: sessionID, Turns: turns})
}

type clearRequest struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		Error(w, http.StatusBadRequest, "session id is required")
		return
	}

	if err := h.memory.Clear(r.Context(), req.SessionID); err != nil {
		h.logger.Error("failed to clear session", "session_id", req.SessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type feedbackRequest struct {
	SessionID string `json:"session_id"`
	MsgID     string `json:"msg_id"`
	Feedback  string `json:"feedback"`
}

func (h *Handler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MsgID == "" || req.Feedback == "" {
		Error(w, http.StatusBadRequest, "msg_id and feedback are required")
		return
	}

	history, err := h.memory.GetHistory(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Warn("failed to count session turns for feedback", "session_id", req.SessionID, "error", err)
	}

	h.feedback.Log(feedback.NewEvent(req.Feedback, req.MsgID, len(history)))
	JSON(w, http.StatusAccepted, map[string]bool{"success": true})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
