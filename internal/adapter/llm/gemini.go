package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements Client on top of the Gemini SDK.
type GeminiClient struct {
	client   *genai.Client
	newModel func(systemPrompt string) generativeModel
	timeout  time.Duration
	logger   *slog.Logger
}

// NewGeminiClient creates a Gemini backed client for modelName.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger *slog.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		newModel: func(systemPrompt string) generativeModel {
			m := client.GenerativeModel(modelName)
			m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
			return m
		},
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Generate runs a single turn completion with systemPrompt as instruction.
func (c *GeminiClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.newModel(systemPrompt).GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		c.logger.Error("gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(res)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// Close releases the underlying SDK connection.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
