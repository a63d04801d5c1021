package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/agrimind/agrichat/config"
	openai_tools "github.com/agrimind/agrichat/pkg/openai-tools"
	"github.com/sashabaranov/go-openai"
)

type FailureReason string

const (
	FailureNone      = FailureReason("")
	FailureTimeout   = FailureReason("timeout")
	FailureTransport = FailureReason("transport")
	FailureAPI       = FailureReason("api")
	FailureEmpty     = FailureReason("empty")
)

// Result carries either the reply text or a categorized failure from
// the completion endpoint. Callers branch on Failure instead of
// handling errors, so a remote problem can never escape as a hard
// failure of the request.
type Result struct {
	Text    string
	Failure FailureReason
	Err     error
}

func (r Result) OK() bool {
	return r.Failure == FailureNone
}

// Completer is the completion-endpoint contract the orchestrator uses.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) Result
}

// OpenAIUsecase sends composed message arrays to an OpenAI-compatible
// chat completion endpoint. Every call is a single attempt under a
// bounded timeout; there is no retry policy.
type OpenAIUsecase struct {
	cfg    config.OpenAI
	client *openai.Client
	logger *slog.Logger
}

func NewOpenAIUsecase(cfg config.OpenAI, logger *slog.Logger) *OpenAIUsecase {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIUsecase{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger,
	}
}

func (u *OpenAIUsecase) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) Result {
	messages = u.trimToTokenBudget(messages)

	ctx, cancel := context.WithTimeout(ctx, u.cfg.RequestTimeout)
	defer cancel()

	resp, err := u.client.CreateChatCompletion(
		ctx, openai.ChatCompletionRequest{
			Model:       u.cfg.OpenAIModel,
			Temperature: temperature,
			TopP:        1,
			N:           1,
			Messages:    messages,
		},
	)
	if err != nil {
		reason := categorizeError(err)
		u.logger.Warn("completion call failed", "reason", string(reason), "error", err)
		return Result{Failure: reason, Err: err}
	}

	if len(resp.Choices) == 0 {
		return Result{Failure: FailureEmpty}
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return Result{Failure: FailureEmpty}
	}
	return Result{Text: text}
}

// trimToTokenBudget drops the oldest history messages until the prompt
// fits the configured budget. The leading system prompt and the final
// message are never dropped, so an over-budget lone query still goes
// out intact.
func (u *OpenAIUsecase) trimToTokenBudget(messages []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	keep := 1
	if len(messages) > 0 && messages[0].Role == openai.ChatMessageRoleSystem {
		keep = 2
	}
	for len(messages) > keep {
		tokenCount, err := openai_tools.CountToken(messages, u.cfg.OpenAIModel)
		if err != nil {
			u.logger.Warn("token count failed, trimming defensively", "error", err)
			messages = dropOldest(messages)
			continue
		}
		if tokenCount < u.cfg.HistoryTokenBudget {
			break
		}
		u.logger.Info("history trimmed due to token limit")
		messages = dropOldest(messages)
	}
	return messages
}

// dropOldest returns a copy without the first message after the leading
// system prompt, or without the first message outright when there is no
// system prompt. The input slice is left untouched.
func dropOldest(messages []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)-1)
	if len(messages) > 1 && messages[0].Role == openai.ChatMessageRoleSystem {
		out = append(out, messages[0])
		return append(out, messages[2:]...)
	}
	return append(out, messages[1:]...)
}

func categorizeError(err error) FailureReason {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTimeout
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return FailureAPI
	}
	return FailureTransport
}
