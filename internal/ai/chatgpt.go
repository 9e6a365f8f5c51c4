// Package ai generates example sentences for vocabulary words through the
// OpenAI API. The feature is optional: without an API key the constructor
// fails and callers treat the helper as disabled.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kimranazman/mymandarin/pkg/models"
)

// ChatGPT is a client for generating learning material
type ChatGPT struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// New creates a new ChatGPT client
func New() (*ChatGPT, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &ChatGPT{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   100,
		temperature: 0.7,
	}, nil
}

// GenerateExample asks for a short example sentence using the word.
func (c *ChatGPT) GenerateExample(ctx context.Context, word models.Word) (string, error) {
	prompt := fmt.Sprintf(
		"Write one short, practical example sentence in simplified Chinese that naturally uses %s (%s, meaning '%s'). Follow it with the pinyin and an English translation.",
		word.Hanzi, word.Pinyin, word.Meaning,
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a Mandarin tutor. You create clear, beginner-friendly example sentences for vocabulary practice.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate example: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateExampleWithFallback generates an example, falling back to the
// word's stored notes when the API is unavailable.
func (c *ChatGPT) GenerateExampleWithFallback(ctx context.Context, word models.Word) string {
	example, err := c.GenerateExample(ctx, word)
	if err != nil {
		if word.Notes != "" {
			return word.Notes
		}
		return fmt.Sprintf("%s (%s): %s", word.Hanzi, word.Pinyin, word.Meaning)
	}
	return example
}
