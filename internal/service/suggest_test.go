package service

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	content string
	err     error

	gotReq openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the delimited suggestion string", func(t *testing.T) {
		fake := &fakeCompleter{content: "What's your favourite season?||What made you smile today?||What skill would you love to learn?"}
		svc := &SuggestService{Client: fake, Model: "gpt-4o-mini"}

		got, err := svc.Suggest(ctx)
		require.NoError(t, err)
		require.Equal(t, fake.content, got)
		require.Equal(t, "gpt-4o-mini", fake.gotReq.Model)
		require.Len(t, fake.gotReq.Messages, 1)
		require.Contains(t, fake.gotReq.Messages[0].Content, "'||'")
	})

	t.Run("backend failure reports unavailable", func(t *testing.T) {
		fake := &fakeCompleter{err: errors.New("upstream timeout")}
		svc := &SuggestService{Client: fake}

		_, err := svc.Suggest(ctx)
		require.ErrorIs(t, err, ErrSuggestUnavailable)
	})

	t.Run("empty completion reports unavailable", func(t *testing.T) {
		fake := &fakeCompleter{content: ""}
		svc := &SuggestService{Client: fake}

		_, err := svc.Suggest(ctx)
		require.ErrorIs(t, err, ErrSuggestUnavailable)
	})
}
