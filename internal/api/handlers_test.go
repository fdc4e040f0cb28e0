package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsideai/courtside/internal/config"
	"github.com/courtsideai/courtside/internal/provider/apisports"
	"github.com/courtsideai/courtside/internal/resolve"
)

// fakeProvider implements Provider with overridable behavior per test.
type fakeProvider struct {
	searchTeams    func(term string) []apisports.TeamEntry
	searchPlayers  func(term string) []apisports.Player
	playersByTeam  func(teamID int, season string) []json.RawMessage
	playerStats    func(playerID int, season string) []json.RawMessage
	teamStats      func(teamID int, season string) json.RawMessage
	standings      func(season string) []json.RawMessage
	games          func(season string, teamID int, h2h string) []json.RawMessage
	gamesH2HCalls  []string
	rosterRequests []int
}

func (f *fakeProvider) SearchTeams(_ context.Context, term string, _ int, _ string) ([]apisports.TeamEntry, error) {
	if f.searchTeams == nil {
		return nil, nil
	}
	return f.searchTeams(term), nil
}

func (f *fakeProvider) SearchPlayers(_ context.Context, term string) ([]apisports.Player, error) {
	if f.searchPlayers == nil {
		return nil, nil
	}
	return f.searchPlayers(term), nil
}

func (f *fakeProvider) PlayersByTeam(_ context.Context, teamID int, season string) ([]json.RawMessage, error) {
	f.rosterRequests = append(f.rosterRequests, teamID)
	if f.playersByTeam == nil {
		return nil, nil
	}
	return f.playersByTeam(teamID, season), nil
}

func (f *fakeProvider) PlayerGameStatistics(_ context.Context, playerID int, season string) ([]json.RawMessage, error) {
	if f.playerStats == nil {
		return nil, nil
	}
	return f.playerStats(playerID, season), nil
}

func (f *fakeProvider) TeamSeasonStatistics(_ context.Context, _, teamID int, season string) (json.RawMessage, error) {
	if f.teamStats == nil {
		return nil, nil
	}
	return f.teamStats(teamID, season), nil
}

func (f *fakeProvider) Standings(_ context.Context, _ int, season string) ([]json.RawMessage, error) {
	if f.standings == nil {
		return nil, nil
	}
	return f.standings(season), nil
}

func (f *fakeProvider) Games(_ context.Context, _ int, season string, teamID int, h2h string) ([]json.RawMessage, error) {
	if h2h != "" {
		f.gamesH2HCalls = append(f.gamesH2HCalls, h2h)
	}
	if f.games == nil {
		return nil, nil
	}
	return f.games(season, teamID, h2h), nil
}

func testConfig() *config.Config {
	return &config.Config{
		APISportsKey:     "test-key",
		CORSAllowOrigins: []string{"*"},
		CurrentSeason:    "2023-2024",
	}
}

func newTestRouter(fp *fakeProvider) http.Handler {
	cfg := testConfig()
	resolver := resolve.New(fp, config.NBALeagueID, nil)
	return NewRouter(New(fp, resolver, cfg, nil), cfg)
}

func doGet(t *testing.T, h http.Handler, url string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "every response must be JSON")
	return rec.Code, body
}

func TestPlayerStats(t *testing.T) {
	raw := json.RawMessage(`{"points": 30}`)
	fp := &fakeProvider{
		searchPlayers: func(term string) []apisports.Player {
			assert.Equal(t, "curry", term)
			return []apisports.Player{{ID: 124, Name: "Stephen Curry", Country: "USA", Position: "Guard"}}
		},
		playerStats: func(playerID int, season string) []json.RawMessage {
			assert.Equal(t, 124, playerID)
			assert.Equal(t, "2021-2022", season)
			return []json.RawMessage{raw, raw}
		},
	}

	code, body := doGet(t, newTestRouter(fp), "/nba/player-stats?player=Stephen+Curry&season=2021-2022")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(124), body["player_id"])
	assert.Equal(t, float64(2), body["total_games"])
	assert.Equal(t, "Stephen Curry", body["query"].(map[string]any)["player"])
}

func TestPlayerStats_PlayerNotFound(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/player-stats?player=Nobody")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Player not found", body["error"])
}

func TestPlayerStats_EmptyStats(t *testing.T) {
	fp := &fakeProvider{
		searchPlayers: func(string) []apisports.Player {
			return []apisports.Player{{ID: 9, Name: "Stephen Curry"}}
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/player-stats?player=Stephen+Curry")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No stats found", body["error"])
	assert.Equal(t, float64(9), body["player_id"])
}

func TestTeamStats_MissingTeam(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/team-stats")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Provide a team name", body["error"])
}

func TestTeamStats(t *testing.T) {
	fp := &fakeProvider{
		teamStats: func(teamID int, season string) json.RawMessage {
			assert.Equal(t, 133, teamID, "static table resolves the Celtics")
			return json.RawMessage(`{"games": {"wins": 64}}`)
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/team-stats?team=Boston+Celtics")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(133), body["team_id"])
}

func TestTeamStats_UnknownTeam(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/team-stats?team=Globetrotters")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Team 'Globetrotters' not found", body["error"])
}

func TestStandings_UnwrapsNestedLeague(t *testing.T) {
	fp := &fakeProvider{
		standings: func(season string) []json.RawMessage {
			return []json.RawMessage{
				[]byte(`{"league": {"id": 12, "standings": [[{"position": 1, "team": {"name": "Boston Celtics"}}]]}}`),
			}
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/standings")
	assert.Equal(t, http.StatusOK, code)

	standings, ok := body["standings"].([]any)
	require.True(t, ok)
	first := standings[0].([]any)[0].(map[string]any)
	assert.Equal(t, float64(1), first["position"])
}

func TestStandings_FlatPassthrough(t *testing.T) {
	fp := &fakeProvider{
		standings: func(season string) []json.RawMessage {
			return []json.RawMessage{[]byte(`{"position": 1}`)}
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/standings")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["standings"], 1)
}

func TestStandings_Empty(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/standings")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No standings found", body["error"])
}

func TestGames_WithoutTeamFilter(t *testing.T) {
	fp := &fakeProvider{
		games: func(season string, teamID int, h2h string) []json.RawMessage {
			assert.Equal(t, 0, teamID)
			assert.Equal(t, "2023-2024", season, "missing season uses the configured default")
			return []json.RawMessage{[]byte(`{"id": 1}`)}
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/games")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["team_id"])
}

func TestTeamRoster_EndToEnd(t *testing.T) {
	// "OKC" style input is the mediator's job; the stats API receives the
	// canonical name and resolves it to team 152 from the static table.
	fp := &fakeProvider{
		playersByTeam: func(teamID int, season string) []json.RawMessage {
			return []json.RawMessage{[]byte(`{"name": "Shai Gilgeous-Alexander"}`)}
		},
	}
	code, body := doGet(t, newTestRouter(fp), "/nba/team-roster?team=Oklahoma+City+Thunder")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(152), body["team_id"])
	assert.Equal(t, "2023-2024", body["season"], "season defaulted before the provider call")
	assert.Equal(t, []int{152}, fp.rosterRequests)
}

func TestTeamRoster_EmptyEchoesAPIParams(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/team-roster?team=Utah+Jazz&season=2020")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No players found for team", body["error"])

	params := body["api_params"].(map[string]any)
	assert.Equal(t, float64(160), params["team"])
	assert.Equal(t, "2020-2021", params["season"])
}

func TestH2H_AscendingKeyThenSwappedRetry(t *testing.T) {
	// team1 resolves to the higher id, so the ascending key goes out first
	// and the swapped key is retried once when it yields nothing.
	fp := &fakeProvider{
		searchTeams: func(term string) []apisports.TeamEntry {
			switch term {
			case "alphas":
				return []apisports.TeamEntry{{
					Team:   apisports.Team{ID: 5, Name: "Alphas"},
					League: apisports.LeagueBrief{ID: "12"},
				}}
			case "betas":
				return []apisports.TeamEntry{{
					Team:   apisports.Team{ID: 3, Name: "Betas"},
					League: apisports.LeagueBrief{ID: "12"},
				}}
			}
			return nil
		},
		games: func(season string, teamID int, h2h string) []json.RawMessage {
			if h2h == "5-3" {
				return []json.RawMessage{[]byte(`{"id": 77}`)}
			}
			return nil
		},
	}

	code, body := doGet(t, newTestRouter(fp), "/nba/h2h?team1=alphas&team2=betas")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"3-5", "5-3"}, fp.gamesH2HCalls, "ascending ids first, one swapped retry")
	assert.Equal(t, "5-3", body["h2h"])
	assert.Equal(t, float64(1), body["total_games"])
}

func TestH2H_AscendingInputNoRetry(t *testing.T) {
	fp := &fakeProvider{
		searchTeams: func(term string) []apisports.TeamEntry {
			id := 3
			if term == "betas" {
				id = 5
			}
			return []apisports.TeamEntry{{
				Team:   apisports.Team{ID: id, Name: term},
				League: apisports.LeagueBrief{ID: "12"},
			}}
		},
	}

	code, _ := doGet(t, newTestRouter(fp), "/nba/h2h?team1=alphas&team2=betas")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, []string{"3-5"}, fp.gamesH2HCalls, "ascending input order gets no swapped retry")
}

func TestH2H_MissingTeams(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/h2h?team1=Los+Angeles+Lakers")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Provide both team1 and team2 names", body["error"])
}

func TestH2H_UnresolvableTeam(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/h2h?team1=Los+Angeles+Lakers&team2=Globetrotters")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Invalid team(s)", body["error"])
	assert.Equal(t, float64(145), body["team1_id"])
	assert.Nil(t, body["team2_id"])
}

func TestUnknownRoute(t *testing.T) {
	code, body := doGet(t, newTestRouter(&fakeProvider{}), "/nba/nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Unknown route", body["error"])
	assert.Equal(t, "/nba/nope", body["path"])
}

func TestMissingProviderKey(t *testing.T) {
	cfg := testConfig()
	cfg.APISportsKey = ""
	fp := &fakeProvider{}
	resolver := resolve.New(fp, config.NBALeagueID, nil)
	router := NewRouter(New(fp, resolver, cfg, nil), cfg)

	code, body := doGet(t, router, "/nba/standings")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Missing APISPORTS_KEY", body["error"])
}
