// Package backend is the mediator's client for the stats API (/nba routes).
// Every failure is converted into a value-level {"error": ...} result so the
// pipeline keeps flowing; the composer turns error markers into a graceful
// answer instead of a fault.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/courtsideai/courtside/internal/season"
)

// Result is the opaque structured payload from the stats API. An "error"
// key marks a failed or empty retrieval.
type Result = map[string]any

// Client calls the stats API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a stats API client. A 15 second timeout bounds every
// call per the pipeline's resource model.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// errResult builds an error-marked result.
func errResult(format string, args ...any) Result {
	return Result{"error": fmt.Sprintf(format, args...)}
}

// Get performs a GET against a stats API path and returns either the parsed
// JSON body or an error-marked result. It never returns a Go error.
func (c *Client) Get(ctx context.Context, path string, params url.Values) Result {
	if c.baseURL == "" {
		return errResult("BACKEND_BASE_URL not set")
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	c.logger.Debug("backend request", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errResult("Error calling backend: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errResult("Error calling backend: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult("Error calling backend: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{
			"error": fmt.Sprintf("Backend returned HTTP %d", resp.StatusCode),
			"body":  string(raw),
		}
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return errResult("Error decoding backend response: %v", err)
	}
	return result
}

// --------------------------------------------------------------------------
// Route helpers — one per stats endpoint
// --------------------------------------------------------------------------

func withSeason(params url.Values, s season.Season) url.Values {
	if s != "" {
		params.Set("season", s.String())
	}
	return params
}

// PlayerStats fetches per-game statistics for a player.
func (c *Client) PlayerStats(ctx context.Context, playerName string, s season.Season) Result {
	return c.Get(ctx, "/nba/player-stats", withSeason(url.Values{"player": {playerName}}, s))
}

// TeamStats fetches aggregate season statistics for a team.
func (c *Client) TeamStats(ctx context.Context, teamName string, s season.Season) Result {
	return c.Get(ctx, "/nba/team-stats", withSeason(url.Values{"team": {teamName}}, s))
}

// Standings fetches league standings.
func (c *Client) Standings(ctx context.Context, s season.Season) Result {
	return c.Get(ctx, "/nba/standings", withSeason(url.Values{}, s))
}

// Games fetches games, optionally filtered by team.
func (c *Client) Games(ctx context.Context, teamName string, s season.Season) Result {
	params := url.Values{}
	if teamName != "" {
		params.Set("team", teamName)
	}
	return c.Get(ctx, "/nba/games", withSeason(params, s))
}

// TeamRoster fetches a team's roster.
func (c *Client) TeamRoster(ctx context.Context, teamName string, s season.Season) Result {
	return c.Get(ctx, "/nba/team-roster", withSeason(url.Values{"team": {teamName}}, s))
}

// H2H fetches head-to-head games between two teams.
func (c *Client) H2H(ctx context.Context, team1, team2 string, s season.Season) Result {
	params := url.Values{"team1": {team1}, "team2": {team2}}
	return c.Get(ctx, "/nba/h2h", withSeason(params, s))
}
