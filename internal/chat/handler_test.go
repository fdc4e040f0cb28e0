package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsideai/courtside/internal/backend"
	"github.com/courtsideai/courtside/internal/compose"
	"github.com/courtsideai/courtside/internal/config"
	"github.com/courtsideai/courtside/internal/intent"
	"github.com/courtsideai/courtside/internal/oracle"
)

// scriptedOracle answers the extraction call with JSON and every later call
// with a fixed answer.
type scriptedOracle struct {
	extraction string
	answer     string
	calls      int
}

func (s *scriptedOracle) Complete(_ context.Context, system, _ string, _ int) (string, error) {
	s.calls++
	if strings.Contains(system, "extracts structured JSON commands") {
		return s.extraction, nil
	}
	return s.answer, nil
}

// statsBackend is a canned stats API.
type statsBackend struct {
	status   int
	body     string
	requests []string
}

func (sb *statsBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sb.requests = append(sb.requests, r.URL.String())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(sb.status)
		w.Write([]byte(sb.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, o oracle.Oracle, backendURL string) http.Handler {
	t.Helper()
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	h := New(
		intent.NewClassifier(o, nil),
		backend.NewClient(backendURL, 2*time.Second, nil),
		compose.New(o, nil),
		nil,
	)
	return NewRouter(h, cfg)
}

func postChat(t *testing.T, router http.Handler, body string) (int, Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestChat_RosterEndToEnd(t *testing.T) {
	// The oracle punts to chit_chat; the keyword correction pass recovers
	// team_roster and "OKC" canonicalizes to the full team name.
	o := &scriptedOracle{
		extraction: `{"intent":"chit_chat","team_name":"OKC"}`,
		answer:     "The Thunder roster features Shai Gilgeous-Alexander.",
	}
	sb := &statsBackend{status: 200, body: `{"query":{"team":"Oklahoma City Thunder"},"team_id":152,"roster":[]}`}
	router := newTestRouter(t, o, sb.server(t).URL)

	code, env := postChat(t, router, `{"message": "Who is on the OKC roster?"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, intent.TeamRoster, env.Intent)
	assert.Equal(t, "The Thunder roster features Shai Gilgeous-Alexander.", env.Answer)

	require.Len(t, sb.requests, 1)
	assert.Equal(t, "/nba/team-roster?team=Oklahoma+City+Thunder", sb.requests[0],
		"no season slot means no season parameter; the stats API defaults it")

	cmd := env.Debug["command"].(map[string]any)
	assert.Equal(t, "Oklahoma City Thunder", cmd["team_name"])
	assert.NotEmpty(t, env.Debug["request_id"])
}

func TestChat_PlayerStatsRetrievalFailure(t *testing.T) {
	// Backend 404s: the error marker must flow into the debug envelope and
	// the composer context rather than becoming an HTTP failure.
	o := &scriptedOracle{
		extraction: `{"intent":"player_stats","player_name":"Stephen Curry","season":null}`,
		answer:     "I couldn't retrieve Curry's statistics for that season.",
	}
	sb := &statsBackend{status: 404, body: `{"error":"No stats found"}`}
	router := newTestRouter(t, o, sb.server(t).URL)

	code, env := postChat(t, router, `{"message": "Give me Stephen Curry's stats for 2022 season"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, intent.PlayerStats, env.Intent)

	require.Len(t, sb.requests, 1)
	assert.Equal(t, "/nba/player-stats?player=Stephen+Curry&season=2021-2022", sb.requests[0],
		"bare year in text is the season's end: 2022 -> 2021-2022")

	backendDebug := env.Debug["backend"].(map[string]any)
	assert.Contains(t, backendDebug["error"], "Backend returned HTTP 404")
}

func TestChat_ChitChatSkipsBackend(t *testing.T) {
	o := &scriptedOracle{
		extraction: `{"intent":"chit_chat"}`,
		answer:     "Happy to talk hoops anytime!",
	}
	sb := &statsBackend{status: 200, body: `{}`}
	router := newTestRouter(t, o, sb.server(t).URL)

	code, env := postChat(t, router, `{"message": "do you like basketball?"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, intent.ChitChat, env.Intent)
	assert.Empty(t, sb.requests, "chit_chat makes no backend call")

	backendDebug := env.Debug["backend"].(map[string]any)
	assert.Contains(t, backendDebug["note"], "No backend call made")
}

func TestChat_MissingMessage(t *testing.T) {
	router := newTestRouter(t, &scriptedOracle{}, "http://unused")

	for _, body := range []string{`{}`, ``, `{"message": ""}`, `not json`} {
		code, _ := func() (int, map[string]any) {
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			var m map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
			return rec.Code, m
		}()
		assert.Equal(t, http.StatusBadRequest, code, "body %q", body)
	}
}

func TestChat_QueryStringFallback(t *testing.T) {
	o := &scriptedOracle{extraction: `{"intent":"chit_chat"}`, answer: "hi"}
	router := newTestRouter(t, o, "http://unused")

	req := httptest.NewRequest(http.MethodGet, "/chat?q=hello", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChat_PreflightReturns200(t *testing.T) {
	router := newTestRouter(t, &scriptedOracle{}, "http://unused")

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestChat_OracleFailureStillAnswers(t *testing.T) {
	// A dead oracle degrades the whole pipeline to chit_chat plus the
	// canned apology, never an HTTP error.
	o := &failingOracle{}
	router := newTestRouter(t, o, "http://unused")

	code, env := postChat(t, router, `{"message": "who leads the west?"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, intent.ChitChat, env.Intent)
	assert.Equal(t, oracle.FallbackAnswer, env.Answer)
}

type failingOracle struct{}

func (f *failingOracle) Complete(context.Context, string, string, int) (string, error) {
	return "", context.DeadlineExceeded
}
