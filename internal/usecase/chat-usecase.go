package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agrimind/agrichat/config"
	"github.com/agrimind/agrichat/internal/classify"
	"github.com/agrimind/agrichat/internal/knowledge"
	"github.com/agrimind/agrichat/internal/model"
	"github.com/agrimind/agrichat/internal/prompt"
	"github.com/agrimind/agrichat/internal/shape"
	"github.com/agrimind/agrichat/pkg/local"
	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
)

var (
	MessageEmpty = local.NewSet(
		"You sent an empty message. Ask me anything!",
		local.NewVariant(local.PersonaAgronomist, "Your message came through empty. Ask me about your crop, soil, or market prices."),
	)
	MessageModelUnavailable = local.NewSet(
		"I'm having trouble thinking right now. Please try again in a moment.",
		local.NewVariant(local.PersonaAgronomist, "I can't reach the field office right now. Please try again in a moment."),
	)
	MessageAttachmentSkipped = local.NewSet(
		"[attachment skipped: file exceeds the size limit]",
	)

	generalSystemPrompt = local.NewSet(
		"You are a helpful assistant. Answer clearly and concisely, using markdown formatting where it improves readability.",
		local.NewVariant(
			local.PersonaAgronomist,
			"You are AgriChat, a practical farming advisor. Answer clearly and concisely in plain language a farmer can act on, using markdown formatting where it improves readability.",
		),
	)
)

type ReplySource string

const (
	ReplySourceLocal    = ReplySource("local")
	ReplySourceCode     = ReplySource("code")
	ReplySourceDocument = ReplySource("document")
	ReplySourceModel    = ReplySource("model")
)

type ChatRequest struct {
	SessionID  string
	Message    string
	Attachment string
}

type ChatReply struct {
	MsgID    string
	Text     string
	Source   ReplySource
	Language string
}

type ChatUsecaseDeps struct {
	Memory    *ConversationUsecase
	OpenAI    Completer
	Knowledge *knowledge.Base
}

// ChatUsecase is the request orchestrator: one synchronous chain of
// classify, route (local, code, document or general), shape, remember
// per user turn.
type ChatUsecase struct {
	ChatUsecaseDeps
	cfg     config.Chat
	memory  config.Memory
	openAI  config.OpenAI
	persona local.Persona
	logger  *slog.Logger
}

func NewChatUsecase(deps ChatUsecaseDeps, cfg config.Chat, memCfg config.Memory, aiCfg config.OpenAI, logger *slog.Logger) *ChatUsecase {
	return &ChatUsecase{
		ChatUsecaseDeps: deps,
		cfg:             cfg,
		memory:          memCfg,
		openAI:          aiCfg,
		persona:         local.ParsePersona(cfg.Persona),
		logger:          logger,
	}
}

// HandleMessage processes one user turn and always produces a
// best-effort textual reply; remote failures surface as the persona's
// fixed fallback string, never as an error to the caller.
func (c *ChatUsecase) HandleMessage(ctx context.Context, req ChatRequest) ChatReply {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatReply{
			MsgID:  uuid.NewString(),
			Text:   MessageEmpty.Text(c.persona),
			Source: ReplySourceLocal,
		}
	}

	// Classification and generation see the attachment text; memory
	// keeps only the typed message so the retained transcript stays
	// small and bounded.
	effective := c.effectiveQuery(message, req.Attachment)

	if answer, ok := c.Knowledge.LocalAnswer(effective); ok {
		c.remember(ctx, req.SessionID, message, answer)
		return ChatReply{
			MsgID:  uuid.NewString(),
			Text:   answer,
			Source: ReplySourceLocal,
		}
	}

	res := classify.Classify(effective)

	var reply ChatReply
	switch {
	case res.IsCode:
		reply = c.generateCode(ctx, req.SessionID, effective, res)
	case res.IsDocument:
		reply = c.generateDocument(ctx, req.SessionID, effective, res)
	default:
		reply = c.generalAnswer(ctx, req.SessionID, effective)
	}

	reply.MsgID = uuid.NewString()
	reply.Text = shape.Normalize(reply.Text)
	c.remember(ctx, req.SessionID, message, reply.Text)
	return reply
}

// effectiveQuery appends attachment text to the query, or a skipped
// note when the attachment exceeds the size cap. An oversized upload is
// never a fatal error.
func (c *ChatUsecase) effectiveQuery(message, attachment string) string {
	if attachment == "" {
		return message
	}
	if len(attachment) > c.cfg.MaxAttachmentBytes {
		c.logger.Info("attachment skipped", "size", len(attachment), "limit", c.cfg.MaxAttachmentBytes)
		return message + "\n\n" + MessageAttachmentSkipped.Text(c.persona)
	}
	return message + "\n\nAttached content:\n" + attachment
}

func (c *ChatUsecase) generateCode(ctx context.Context, sessionID, query string, res classify.Result) ChatReply {
	deep := classify.NeedsDeepTechnicalReasoning(query)
	system, user := prompt.ComposeCode(query, res.Language, deep, res.IsFollowUp)

	if res.IsFollowUp {
		if transcript := c.Memory.GetContext(ctx, sessionID, c.memory.MaxContextTurns); transcript != "" {
			user = transcript + "\n" + user
		}
	}

	result := c.OpenAI.Complete(ctx, composeMessages(system, user), c.openAI.CodeTemperature)
	if !result.OK() {
		return ChatReply{Text: MessageModelUnavailable.Text(c.persona), Source: ReplySourceCode}
	}

	text := shape.EnsureCodeFence(result.Text, res.Language)
	text = shape.StructureCodeExplanation(text, res.Language)
	return ChatReply{
		Text:     text,
		Source:   ReplySourceCode,
		Language: classify.DetectLanguageFromCode(text),
	}
}

func (c *ChatUsecase) generateDocument(ctx context.Context, sessionID, query string, res classify.Result) ChatReply {
	deep := classify.NeedsDeepFormatting(query)
	system, user := prompt.ComposeDocument(query, res.DocumentType, deep, res.IsFollowUp)

	if res.IsFollowUp {
		if transcript := c.Memory.GetContext(ctx, sessionID, c.memory.MaxContextTurns); transcript != "" {
			user = transcript + "\n" + user
		}
	}

	result := c.OpenAI.Complete(ctx, composeMessages(system, user), c.openAI.DocumentTemperature)
	if !result.OK() {
		return ChatReply{Text: MessageModelUnavailable.Text(c.persona), Source: ReplySourceDocument}
	}

	return ChatReply{
		Text:   shape.StructureDocument(result.Text, res.DocumentType),
		Source: ReplySourceDocument,
	}
}

// generalAnswer sends the persona preamble plus the role-tagged retained
// history and the current query to the completion endpoint.
func (c *ChatUsecase) generalAnswer(ctx context.Context, sessionID, query string) ChatReply {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: generalSystemPrompt.Text(c.persona)},
	}

	history, err := c.Memory.GetHistory(ctx, sessionID)
	if err != nil {
		c.logger.Warn("failed to load history, answering without context", "session_id", sessionID, "error", err)
	}
	for _, turn := range history {
		messages = append(
			messages, openai.ChatCompletionMessage{
				Role:    parseRoleToOpenAI(turn.Role),
				Content: turn.Content,
			},
		)
	}
	messages = append(
		messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: query,
		},
	)

	result := c.OpenAI.Complete(ctx, messages, c.openAI.ModelTemperature)
	if !result.OK() {
		return ChatReply{Text: MessageModelUnavailable.Text(c.persona), Source: ReplySourceModel}
	}
	return ChatReply{Text: result.Text, Source: ReplySourceModel}
}

// remember appends the user turn then the bot turn; storage failures
// are logged, not surfaced, so a broken store never swallows a reply.
func (c *ChatUsecase) remember(ctx context.Context, sessionID, userMessage, botReply string) {
	if err := c.Memory.AddMessage(ctx, sessionID, model.RoleUser, userMessage); err != nil {
		c.logger.Error("failed to store user turn", "session_id", sessionID, "error", err)
	}
	if err := c.Memory.AddMessage(ctx, sessionID, model.RoleBot, botReply); err != nil {
		c.logger.Error("failed to store bot turn", "session_id", sessionID, "error", err)
	}
}

func composeMessages(system, user string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}

func parseRoleToOpenAI(role model.Role) string {
	switch role {
	case model.RoleBot:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
