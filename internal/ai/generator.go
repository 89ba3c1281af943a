package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the slice of the OpenAI client the generator needs. Keeping it
// an interface lets tests substitute a stub without any network access.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator builds a Generator backed by the real OpenAI client.
// Note: go-openai doesn't directly expose easy retry config on the default
// client, and each generation call here is deliberately attempted exactly once.
func NewGenerator(apiKey, model string) *Generator {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewGeneratorWithClient is the injection point for tests.
func NewGeneratorWithClient(client ChatClient, model string) *Generator {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Generator{client: client, model: model}
}
