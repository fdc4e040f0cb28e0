// Package intent classifies a user question into a structured command for
// the stats backend. Classification runs through the language-model oracle
// with a fixed instruction prompt, then a local heuristic correction pass.
package intent

import "github.com/courtsideai/courtside/internal/season"

// Intent is the classified purpose of a user question.
type Intent string

const (
	PlayerStats Intent = "player_stats"
	TeamStats   Intent = "team_stats"
	Standings   Intent = "standings"
	Games       Intent = "games"
	TeamRoster  Intent = "team_roster"
	H2H         Intent = "h2h"
	ChitChat    Intent = "chit_chat"
)

// valid reports whether s is a member of the intent taxonomy.
func valid(s string) bool {
	switch Intent(s) {
	case PlayerStats, TeamStats, Standings, Games, TeamRoster, H2H, ChitChat:
		return true
	}
	return false
}

// Command is the structured query extracted from one user question.
// Constructed once per request and immutable afterwards; Intent is never
// empty (unclassifiable input is ChitChat).
type Command struct {
	Intent     Intent        `json:"intent"`
	PlayerName string        `json:"player_name,omitempty"`
	TeamName   string        `json:"team_name,omitempty"`
	Team1      string        `json:"team1,omitempty"`
	Team2      string        `json:"team2,omitempty"`
	Season     season.Season `json:"season,omitempty"`
}
