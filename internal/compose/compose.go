// Package compose builds the final natural-language answer. The oracle is
// constrained to ground every numeric claim in the backend JSON; when the
// backend result carries an error marker it must decline to state numbers.
package compose

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/courtsideai/courtside/internal/backend"
	"github.com/courtsideai/courtside/internal/intent"
	"github.com/courtsideai/courtside/internal/oracle"
)

// answerSystemPrompt enforces the grounding contract: backend JSON is the
// only source of numeric stats, and retrieval failure forbids concrete
// numbers.
const answerSystemPrompt = `You are an NBA analytics assistant. You receive:
- The user's question,
- A high-level 'intent' indicating what they asked for,
- Structured JSON data from a stats backend (if available).

Your rules:

1. You MUST treat the backend JSON as the only source of numeric stats
   (points per game, rebounds, assists, shooting percentages, totals, etc.).
2. If the backend JSON has an "error" field or is missing the requested data,
   you MUST NOT guess or invent any specific numbers.
   In that case:
   - Briefly explain that the stats could not be retrieved,
   - You may give a very high-level qualitative answer
     (e.g., "an MVP-level season"), but do NOT state concrete stats.
3. If the backend JSON looks valid, summarize the most relevant numbers
   (averages, totals, key trends) in clear, conversational English.
4. Do NOT dump raw JSON or long game lists unless the user explicitly asks.
5. Be concise: 1-3 short paragraphs plus bullet points if helpful.`

const (
	// contextBudget bounds the serialized context included in the prompt,
	// regardless of backend payload size.
	contextBudget = 8000

	answerMaxTokens = 650
)

// Composer produces the user-facing answer from the pipeline's context.
type Composer struct {
	oracle oracle.Oracle
	logger *slog.Logger
}

// New creates a Composer.
func New(o oracle.Oracle, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{oracle: o, logger: logger}
}

// Compose writes the final answer for a question given the classified
// command and the backend result. Oracle failure yields a canned apology,
// never an error.
func (c *Composer) Compose(ctx context.Context, userText string, cmd intent.Command, result backend.Result) string {
	answer, err := c.oracle.Complete(ctx, answerSystemPrompt, buildUserPrompt(userText, cmd, result), answerMaxTokens)
	if err != nil {
		c.logger.Warn("answer composition failed", "error", err)
		return oracle.FallbackAnswer
	}
	return answer
}

// buildUserPrompt serializes the pipeline context and embeds it, truncated,
// alongside the original question.
func buildUserPrompt(userText string, cmd intent.Command, result backend.Result) string {
	contextObj := map[string]any{
		"intent":   cmd.Intent,
		"entities": cmd,
		"backend":  result,
	}

	serialized, err := json.Marshal(contextObj)
	if err != nil {
		serialized = []byte(`{"error": "context serialization failed"}`)
	}
	if len(serialized) > contextBudget {
		serialized = serialized[:contextBudget]
	}

	return "User question:\n" + userText + "\n\n" +
		"Structured context from backend (JSON):\n" + string(serialized) + "\n\n" +
		"Now write the best possible answer for the user, using ONLY this data for numeric stats."
}
