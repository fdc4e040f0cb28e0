package oracle

import (
	"context"
	"encoding/json"
	"strings"
)

// ParseState tags how a JSON completion was obtained.
type ParseState int

const (
	// Parsed means the oracle output was valid JSON as-is.
	Parsed ParseState = iota
	// Salvaged means JSON was recovered from surrounding prose by slicing
	// between the first '{' and the last '}'.
	Salvaged
	// Empty means no JSON could be recovered; Fields is empty.
	Empty
)

// Outcome is the tagged result of a JSON completion. Callers branch on
// State instead of handling parse errors, keeping the degrade-to-default
// path explicit.
type Outcome struct {
	State  ParseState
	Fields map[string]any
}

// jsonMaxTokens bounds structured-extraction completions.
const jsonMaxTokens = 400

// CompleteJSON asks the oracle for a JSON-only completion and runs the
// salvage chain on its output. Oracle failure yields an Empty outcome, never
// an error.
func CompleteJSON(ctx context.Context, o Oracle, system, user string) Outcome {
	text, err := o.Complete(ctx, system, user, jsonMaxTokens)
	if err != nil {
		return Outcome{State: Empty, Fields: map[string]any{}}
	}
	return ParseJSONOutput(text)
}

// ParseJSONOutput implements the parse -> brace-salvage -> empty chain.
func ParseJSONOutput(text string) Outcome {
	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err == nil {
		return Outcome{State: Parsed, Fields: fields}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		fields = nil
		if err := json.Unmarshal([]byte(text[start:end+1]), &fields); err == nil {
			return Outcome{State: Salvaged, Fields: fields}
		}
	}

	return Outcome{State: Empty, Fields: map[string]any{}}
}

// StringField returns the named field as a trimmed string, or "" when the
// field is absent, null, or not a string.
func (o Outcome) StringField(key string) string {
	v, ok := o.Fields[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
