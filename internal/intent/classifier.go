package intent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/courtsideai/courtside/internal/oracle"
	"github.com/courtsideai/courtside/internal/resolve"
	"github.com/courtsideai/courtside/internal/season"
)

// Classifier turns free text into a Command via the oracle plus local
// heuristics. Oracle failure is never fatal: the result degrades to a
// chit_chat command with empty slots.
type Classifier struct {
	oracle oracle.Oracle
	logger *slog.Logger
}

// NewClassifier creates a Classifier.
func NewClassifier(o oracle.Oracle, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{oracle: o, logger: logger}
}

// Classify extracts intent and slots from a user question.
func (c *Classifier) Classify(ctx context.Context, userText string) Command {
	user := "User question:\n" + userText + "\n\nReturn the JSON command."
	outcome := oracle.CompleteJSON(ctx, c.oracle, systemPrompt, user)
	if outcome.State == oracle.Empty {
		c.logger.Warn("intent extraction degraded to chit_chat", "question", userText)
	}

	cmd := Command{
		Intent:     ChitChat,
		PlayerName: outcome.StringField("player_name"),
		TeamName:   resolve.CanonicalTeamName(outcome.StringField("team_name")),
		Team1:      resolve.CanonicalTeamName(outcome.StringField("team1")),
		Team2:      resolve.CanonicalTeamName(outcome.StringField("team2")),
	}
	if s := outcome.StringField("intent"); valid(s) {
		cmd.Intent = Intent(s)
	}

	if s := outcome.StringField("season"); s != "" {
		cmd.Season = season.Season(s)
	} else if inferred, ok := season.Infer(userText); ok {
		cmd.Season = inferred
	}

	cmd.Intent = correctIntent(cmd, userText)
	return cmd
}

// correctIntent fixes the common case where the oracle punts to chit_chat on
// a question that plainly names a roster or stats request.
func correctIntent(cmd Command, userText string) Intent {
	if cmd.Intent != ChitChat {
		return cmd.Intent
	}

	lm := strings.ToLower(userText)
	switch {
	case strings.Contains(lm, "roster"),
		strings.Contains(lm, "who is on"),
		strings.Contains(lm, "lineup"):
		return TeamRoster
	case strings.Contains(lm, "stats"),
		strings.Contains(lm, "averages"),
		strings.Contains(lm, "box score"):
		if cmd.PlayerName != "" {
			return PlayerStats
		}
		if cmd.TeamName != "" {
			return TeamStats
		}
	}
	return ChitChat
}
