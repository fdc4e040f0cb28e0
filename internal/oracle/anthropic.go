package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// Anthropic is an Oracle backed by the Anthropic messages API via
// langchaingo. Temperature is pinned to zero for stable extraction.
type Anthropic struct {
	llm     *anthropic.LLM
	timeout time.Duration
}

// NewAnthropic creates an Anthropic oracle for the given model.
func NewAnthropic(apiKey, model string, timeout time.Duration) (*Anthropic, error) {
	llm, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create anthropic client: %w", err)
	}
	return &Anthropic{llm: llm, timeout: timeout}, nil
}

// Complete implements Oracle.
func (a *Anthropic) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(0),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("anthropic completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
