// Package openai_tools offers token accounting helpers for chat
// completion requests.
package openai_tools

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

const (
	fallbackEncoding = "cl100k_base"
	// Per-message framing overhead plus the reply priming tokens.
	tokensPerMessage = 4
	tokensPerRequest = 3
)

// CountToken approximates the prompt token count of a message array for
// the given model. Unknown models fall back to the cl100k_base
// encoding.
func CountToken(messages []openai.ChatCompletionMessage, model string) (int, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0, fmt.Errorf("failed to load %s encoding: %w", fallbackEncoding, err)
		}
	}

	count := tokensPerRequest
	for _, message := range messages {
		count += tokensPerMessage
		count += len(enc.Encode(message.Content, nil, nil))
		count += len(enc.Encode(message.Role, nil, nil))
	}
	return count, nil
}
