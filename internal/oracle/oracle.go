// Package oracle wraps the language-model completion services used by the
// mediator. The model is treated as an opaque text/JSON completion oracle:
// callers never see transport errors as faults, only degraded results.
package oracle

import "context"

// Oracle is a plain text completion service with a system instruction.
type Oracle interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// FallbackAnswer is returned to the user when the oracle cannot produce a
// final answer at all.
const FallbackAnswer = "I'm sorry, I had trouble generating a response from the AI model."
