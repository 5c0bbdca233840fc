package service

import (
	"context"
	"errors"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/murmurapp/murmur/pkg/slogx"
)

// ErrSuggestUnavailable is returned when the text-generation backend
// fails or answers with nothing usable.
var ErrSuggestUnavailable = errors.New("suggestion service unavailable")

// suggestPrompt asks for three open-ended questions joined by "||"; the
// client splits on that delimiter.
const suggestPrompt = "Create a list of three open-ended and engaging questions formatted " +
	"as a single string. Each question should be separated by '||'. These questions are for " +
	"an anonymous social messaging platform, like Qooh.me, and should be suitable for a " +
	"diverse audience. Avoid personal or sensitive topics, focusing instead on universal " +
	"themes that encourage friendly interaction. For example, your output should be " +
	"structured like this: 'What's a hobby you've recently started?||If you could have " +
	"dinner with any historical figure, who would it be?||What's a simple thing that makes " +
	"you happy?'. Ensure the questions are intriguing, foster curiosity, and contribute to " +
	"a positive and welcoming conversational environment."

// chatCompleter is the slice of the OpenAI client the service needs;
// tests substitute a fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// SuggestService proxies a fixed prompt to an OpenAI-compatible
// chat-completions endpoint and relays the delimited suggestion string.
type SuggestService struct {
	Client    chatCompleter
	Model     string
	MaxTokens int
}

// NewSuggestService builds a service against an OpenAI-compatible API.
// baseURL may point at any compatible gateway.
func NewSuggestService(baseURL, apiKey, model string) *SuggestService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &SuggestService{
		Client:    openai.NewClientWithConfig(cfg),
		Model:     model,
		MaxTokens: 400,
	}
}

// Suggest returns a "||"-delimited string of message suggestions.
func (s *SuggestService) Suggest(ctx context.Context) (string, error) {
	log := slogx.FromContext(ctx)

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: suggestPrompt},
		},
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		log.Error("chat completion failed", slog.Any("error", err))
		return "", ErrSuggestUnavailable
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrSuggestUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}
