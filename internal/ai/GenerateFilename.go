package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/ai/prompts"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/utils"
)

const maxSlugLen = 50

// GenerateFilename derives an SEO-friendly slug for the landing page from its
// description and appends a random 4-digit suffix. The suffix is unconditional;
// it is what keeps concurrently generated pages from colliding on disk.
//
// This call never fails outward: any service error (timeout, quota, empty
// reply) falls back to a timestamp-based name with the same suffixing rule, so
// the pipeline always gets a usable name.
func (g *Generator) GenerateFilename(ctx context.Context, description string) string {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: prompts.GetFilenameSystemPrompt()},
				{Role: openai.ChatMessageRoleUser, Content: prompts.GetFilenameUserPrompt(description)},
			},
			Temperature: 0.7,
			MaxTokens:   50,
		},
	)
	if err != nil {
		log.Printf("Error generating filename, falling back to timestamp: %v", err)
		return fallbackFilename()
	}
	if len(resp.Choices) == 0 {
		log.Printf("OpenAI returned no choices for filename request, falling back. Usage: %+v", resp.Usage)
		return fallbackFilename()
	}

	slug := utils.NormalizeSlug(strings.TrimSpace(resp.Choices[0].Message.Content), maxSlugLen)
	if slug == "" {
		log.Println("Filename reply normalized to empty slug, falling back to timestamp")
		return fallbackFilename()
	}

	return fmt.Sprintf("%s-%d", slug, utils.RandomSuffix())
}

func fallbackFilename() string {
	return fmt.Sprintf("landing-page-%d-%d", time.Now().UnixMilli(), utils.RandomSuffix())
}
