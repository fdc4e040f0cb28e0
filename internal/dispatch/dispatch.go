// Package dispatch routes a classified command to exactly one stats API
// operation. It is a pure routing table: slot validation happens here, so an
// intent with unmet required slots never reaches the backend.
package dispatch

import (
	"context"

	"github.com/courtsideai/courtside/internal/backend"
	"github.com/courtsideai/courtside/internal/intent"
)

// noCallNote marks results for intents that made no backend call, either
// because the intent is conversational or a required slot is missing.
const noCallNote = "No backend call made for this intent or missing entities."

// Dispatch routes cmd to the matching stats endpoint and returns its result.
// chit_chat and commands with missing required slots yield a no-op result.
func Dispatch(ctx context.Context, client *backend.Client, cmd intent.Command) backend.Result {
	switch cmd.Intent {
	case intent.PlayerStats:
		if cmd.PlayerName != "" {
			return client.PlayerStats(ctx, cmd.PlayerName, cmd.Season)
		}

	case intent.TeamStats:
		if cmd.TeamName != "" {
			return client.TeamStats(ctx, cmd.TeamName, cmd.Season)
		}

	case intent.Standings:
		return client.Standings(ctx, cmd.Season)

	case intent.Games:
		return client.Games(ctx, cmd.TeamName, cmd.Season)

	case intent.TeamRoster:
		if cmd.TeamName != "" {
			return client.TeamRoster(ctx, cmd.TeamName, cmd.Season)
		}

	case intent.H2H:
		if cmd.Team1 != "" && cmd.Team2 != "" {
			return client.H2H(ctx, cmd.Team1, cmd.Team2, cmd.Season)
		}
	}

	return backend.Result{"note": noCallNote}
}
