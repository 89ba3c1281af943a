package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/ai/prompts"
)

// GenerateLandingPage asks the model for a complete HTML document with
// embedded styling. imagePath, when non-empty, points at an uploaded image the
// model is told to place in the hero section.
//
// Unlike GenerateFilename there is no safe default document to substitute, so
// every error here propagates to the caller.
func (g *Generator) GenerateLandingPage(ctx context.Context, description, imagePath string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: prompts.GetLandingPageSystemPrompt()},
				{Role: openai.ChatMessageRoleUser, Content: prompts.GetLandingPageUserPrompt(description, imagePath)},
			},
			Temperature: 0.7,
			MaxTokens:   2000,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for failed landing page request: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
