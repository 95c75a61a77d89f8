package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/rs/zerolog"
)

// OpenAIProvider calls the OpenAI chat completions API. Every call is
// bounded by a timeout and retried once with jittered backoff before
// the failure is surfaced to the caller.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewOpenAIProvider builds a provider around an existing client. The
// client reads OPENAI_API_KEY from the environment by default.
func NewOpenAIProvider(client openai.Client, model string, timeout time.Duration, log zerolog.Logger) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: model, timeout: timeout, log: log}
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	var content string
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		resp, err := p.client.Chat.Completions.New(callCtx, params)
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("chat completion: no choices in response")
		}
		content = resp.Choices[0].Message.Content
		return nil
	}

	if err := backoff.Retry(operation, retryPolicy(ctx)); err != nil {
		p.log.Error().Err(err).Str("model", p.model).Msg("LLM call failed after retry")
		return "", err
	}
	return content, nil
}

// retryPolicy allows exactly one retry with jittered backoff, bounded
// by the caller's context.
func retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	return backoff.WithContext(backoff.WithMaxRetries(b, 1), ctx)
}
