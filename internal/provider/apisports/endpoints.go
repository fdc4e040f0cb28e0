package apisports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// Team is an api-sports team record.
type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Code     string `json:"code"`
	City     string `json:"city"`
}

// LeagueBrief identifies the league a team entry belongs to.
type LeagueBrief struct {
	ID json.Number `json:"id"`
}

// TeamEntry is one item of a league-qualified /teams response.
type TeamEntry struct {
	Team   Team        `json:"team"`
	League LeagueBrief `json:"league"`
}

// SearchTeams queries /teams with a search term, optionally league-filtered
// and season-qualified.
func (c *Client) SearchTeams(ctx context.Context, term string, leagueID int, season string) ([]TeamEntry, error) {
	params := url.Values{"search": {term}}
	if leagueID > 0 {
		params.Set("league", strconv.Itoa(leagueID))
	}
	if season != "" {
		params.Set("season", season)
	}

	env, err := c.get(ctx, "/teams", params)
	if err != nil {
		return nil, fmt.Errorf("search teams %q: %w", term, err)
	}

	var entries []TeamEntry
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &entries); err != nil {
			return nil, fmt.Errorf("decode teams: %w", err)
		}
	}
	return entries, nil
}

// TeamsByLeague lists every team registered in a league. Used by the CLI to
// regenerate the static team table.
func (c *Client) TeamsByLeague(ctx context.Context, leagueID int) ([]TeamEntry, error) {
	params := url.Values{"league": {strconv.Itoa(leagueID)}}

	env, err := c.get(ctx, "/teams", params)
	if err != nil {
		return nil, fmt.Errorf("list league teams: %w", err)
	}

	var entries []TeamEntry
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &entries); err != nil {
			return nil, fmt.Errorf("decode teams: %w", err)
		}
	}
	return entries, nil
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// Player is an api-sports player record.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Position string `json:"position"`
}

// SearchPlayers queries /players with a free-text search term.
func (c *Client) SearchPlayers(ctx context.Context, term string) ([]Player, error) {
	env, err := c.get(ctx, "/players", url.Values{"search": {term}})
	if err != nil {
		return nil, fmt.Errorf("search players %q: %w", term, err)
	}

	var players []Player
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &players); err != nil {
			return nil, fmt.Errorf("decode players: %w", err)
		}
	}
	return players, nil
}

// PlayersByTeam returns the raw roster payload for a team and season.
func (c *Client) PlayersByTeam(ctx context.Context, teamID int, season string) ([]json.RawMessage, error) {
	params := url.Values{
		"team":   {strconv.Itoa(teamID)},
		"season": {season},
	}
	env, err := c.get(ctx, "/players", params)
	if err != nil {
		return nil, fmt.Errorf("team roster: %w", err)
	}
	return env.responseArray()
}

// --------------------------------------------------------------------------
// Statistics, standings, games
// --------------------------------------------------------------------------

// PlayerGameStatistics returns per-game statistics lines for a player across
// a season.
func (c *Client) PlayerGameStatistics(ctx context.Context, playerID int, season string) ([]json.RawMessage, error) {
	params := url.Values{
		"player": {strconv.Itoa(playerID)},
		"season": {season},
	}
	env, err := c.get(ctx, "/games/statistics/players", params)
	if err != nil {
		return nil, fmt.Errorf("player statistics: %w", err)
	}
	return env.responseArray()
}

// TeamSeasonStatistics returns the aggregate season statistics object for a
// team within a league.
func (c *Client) TeamSeasonStatistics(ctx context.Context, leagueID int, teamID int, season string) (json.RawMessage, error) {
	params := url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {season},
		"team":   {strconv.Itoa(teamID)},
	}
	env, err := c.get(ctx, "/statistics", params)
	if err != nil {
		return nil, fmt.Errorf("team statistics: %w", err)
	}
	return env.Response, nil
}

// Standings returns raw league standings for a season.
func (c *Client) Standings(ctx context.Context, leagueID int, season string) ([]json.RawMessage, error) {
	params := url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {season},
	}
	env, err := c.get(ctx, "/standings", params)
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}
	return env.responseArray()
}

// Games returns raw games for a league season, optionally filtered by team
// or by an h2h key ("id1-id2"). Pass teamID=0 / h2h="" to skip a filter.
func (c *Client) Games(ctx context.Context, leagueID int, season string, teamID int, h2h string) ([]json.RawMessage, error) {
	params := url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {season},
	}
	if teamID > 0 {
		params.Set("team", strconv.Itoa(teamID))
	}
	if h2h != "" {
		params.Set("h2h", h2h)
	}
	env, err := c.get(ctx, "/games", params)
	if err != nil {
		return nil, fmt.Errorf("games: %w", err)
	}
	return env.responseArray()
}
