// Package api implements the stats API: six JSON GET routes under /nba
// backed by the api-sports basketball provider. Handlers resolve fuzzy
// team/player names, call the provider, and echo the query for debugging.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/courtsideai/courtside/internal/api/respond"
	"github.com/courtsideai/courtside/internal/config"
	"github.com/courtsideai/courtside/internal/resolve"
	"github.com/courtsideai/courtside/internal/season"
)

// Provider is the subset of the apisports client the handlers use.
type Provider interface {
	resolve.Searcher
	PlayersByTeam(ctx context.Context, teamID int, season string) ([]json.RawMessage, error)
	PlayerGameStatistics(ctx context.Context, playerID int, season string) ([]json.RawMessage, error)
	TeamSeasonStatistics(ctx context.Context, leagueID, teamID int, season string) (json.RawMessage, error)
	Standings(ctx context.Context, leagueID int, season string) ([]json.RawMessage, error)
	Games(ctx context.Context, leagueID int, season string, teamID int, h2h string) ([]json.RawMessage, error)
}

// Handler holds shared dependencies for all /nba endpoints.
type Handler struct {
	provider Provider
	resolver *resolve.Resolver
	cfg      *config.Config
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(provider Provider, resolver *resolve.Resolver, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{provider: provider, resolver: resolver, cfg: cfg, logger: logger}
}

// queryEcho returns the request's query parameters as a flat map, echoed in
// every response for troubleshooting.
func queryEcho(r *http.Request) map[string]string {
	q := map[string]string{}
	for key, vals := range r.URL.Query() {
		if len(vals) > 0 {
			q[key] = vals[0]
		}
	}
	return q
}

// requestSeason canonicalizes the season query parameter, falling back to
// the configured current season. A bare year here is the season's start.
func (h *Handler) requestSeason(r *http.Request) season.Season {
	if s, ok := season.Normalize(r.URL.Query().Get("season")); ok {
		return s
	}
	return season.Season(h.cfg.CurrentSeason)
}

// checkKey guards provider-backed routes when no API key is configured.
func (h *Handler) checkKey(w http.ResponseWriter) bool {
	if h.cfg.APISportsKey == "" {
		respond.Error(w, http.StatusInternalServerError, "Missing APISPORTS_KEY", nil)
		return false
	}
	return true
}

// PlayerStats serves GET /nba/player-stats?player=&season=.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	playerID, _, ok := h.resolver.ResolvePlayer(r.Context(), r.URL.Query().Get("player"))
	if !ok {
		respond.Error(w, http.StatusNotFound, "Player not found", map[string]any{"query": q})
		return
	}

	stats, err := h.provider.PlayerGameStatistics(r.Context(), playerID, s.String())
	if err != nil || len(stats) == 0 {
		h.logWarn("player stats empty", err)
		respond.Error(w, http.StatusNotFound, "No stats found", map[string]any{
			"query":     q,
			"player_id": playerID,
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":       q,
		"player_id":   playerID,
		"total_games": len(stats),
		"data":        stats,
	})
}

// TeamStats serves GET /nba/team-stats?team=&season=.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	teamName := r.URL.Query().Get("team")
	if teamName == "" {
		respond.Error(w, http.StatusBadRequest, "Provide a team name", nil)
		return
	}

	team, ok := h.resolver.ResolveTeam(r.Context(), teamName, s)
	if !ok {
		respond.Error(w, http.StatusNotFound, fmt.Sprintf("Team '%s' not found", teamName), nil)
		return
	}

	stats, err := h.provider.TeamSeasonStatistics(r.Context(), config.NBALeagueID, team.ID, s.String())
	if err != nil || emptyPayload(stats) {
		h.logWarn("team stats empty", err)
		respond.Error(w, http.StatusNotFound, "No stats found", map[string]any{
			"query":   q,
			"team_id": team.ID,
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"team_id": team.ID,
		"data":    stats,
	})
}

// Standings serves GET /nba/standings?season=.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	items, err := h.provider.Standings(r.Context(), config.NBALeagueID, s.String())
	if err != nil || len(items) == 0 {
		h.logWarn("standings empty", err)
		respond.Error(w, http.StatusNotFound, "No standings found", map[string]any{"query": q})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":     q,
		"standings": unwrapStandings(items),
	})
}

// unwrapStandings flattens the provider's nested league/standings structure
// when present; otherwise the items pass through unchanged.
func unwrapStandings(items []json.RawMessage) any {
	var first map[string]any
	if err := json.Unmarshal(items[0], &first); err != nil {
		return items
	}
	league, ok := first["league"].(map[string]any)
	if !ok {
		return items
	}
	if standings, ok := league["standings"]; ok {
		return standings
	}
	return items
}

// Games serves GET /nba/games?team=&season=. The team filter is optional.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	teamID := 0
	if teamName := r.URL.Query().Get("team"); teamName != "" {
		if team, ok := h.resolver.ResolveTeam(r.Context(), teamName, s); ok {
			teamID = team.ID
		}
	}

	games, err := h.provider.Games(r.Context(), config.NBALeagueID, s.String(), teamID, "")
	if err != nil || len(games) == 0 {
		h.logWarn("games empty", err)
		respond.Error(w, http.StatusNotFound, "No games found", map[string]any{
			"query":   q,
			"team_id": teamID,
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"team_id": teamID,
		"games":   games,
	})
}

// TeamRoster serves GET /nba/team-roster?team=&season=.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	team, ok := h.resolver.ResolveTeam(r.Context(), r.URL.Query().Get("team"), s)
	if !ok {
		respond.Error(w, http.StatusNotFound, "Team not found", map[string]any{"query": q})
		return
	}

	roster, err := h.provider.PlayersByTeam(r.Context(), team.ID, s.String())
	if err != nil || len(roster) == 0 {
		h.logWarn("roster empty", err)
		respond.Error(w, http.StatusNotFound, "No players found for team", map[string]any{
			"query":   q,
			"team_id": team.ID,
			"api_params": map[string]any{
				"team":   team.ID,
				"season": s.String(),
			},
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"team_id": team.ID,
		"season":  s.String(),
		"roster":  roster,
	})
}

// H2H serves GET /nba/h2h?team1=&team2=&season=.
//
// The provider's head-to-head key is built from the two team ids in
// ascending numeric order. If that first attempt returns no data and the
// input order was descending, one retry is made with the ids swapped.
func (h *Handler) H2H(w http.ResponseWriter, r *http.Request) {
	if !h.checkKey(w) {
		return
	}
	q := queryEcho(r)
	s := h.requestSeason(r)

	team1 := r.URL.Query().Get("team1")
	team2 := r.URL.Query().Get("team2")
	if team1 == "" || team2 == "" {
		respond.Error(w, http.StatusBadRequest, "Provide both team1 and team2 names", nil)
		return
	}

	t1, ok1 := h.resolver.ResolveTeam(r.Context(), team1, s)
	t2, ok2 := h.resolver.ResolveTeam(r.Context(), team2, s)
	if !ok1 || !ok2 {
		respond.Error(w, http.StatusNotFound, "Invalid team(s)", map[string]any{
			"team1_id": idOrNil(t1, ok1),
			"team2_id": idOrNil(t2, ok2),
		})
		return
	}

	key := h2hKey(t1.ID, t2.ID)
	games, err := h.provider.Games(r.Context(), config.NBALeagueID, s.String(), 0, key)
	if len(games) == 0 && t1.ID > t2.ID {
		key = fmt.Sprintf("%d-%d", t1.ID, t2.ID)
		games, err = h.provider.Games(r.Context(), config.NBALeagueID, s.String(), 0, key)
	}
	if err != nil || len(games) == 0 {
		h.logWarn("h2h empty", err)
		respond.Error(w, http.StatusNotFound, "No head-to-head data found", map[string]any{
			"teams": []string{team1, team2},
			"params": map[string]any{
				"h2h":    key,
				"league": config.NBALeagueID,
				"season": s.String(),
			},
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"query":       q,
		"teams":       []string{team1, team2},
		"h2h":         key,
		"total_games": len(games),
		"data":        games,
	})
}

// h2hKey builds the provider key with ascending ids.
func h2hKey(id1, id2 int) string {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return fmt.Sprintf("%d-%d", id1, id2)
}

func idOrNil(t resolve.TeamIdentity, ok bool) any {
	if !ok {
		return nil
	}
	return t.ID
}

// emptyPayload reports whether a raw provider payload carries no data.
func emptyPayload(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}

func (h *Handler) logWarn(msg string, err error) {
	if err != nil {
		h.logger.Warn(msg, "error", err)
	}
}
