package resolve

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/courtsideai/courtside/internal/provider/apisports"
	"github.com/courtsideai/courtside/internal/season"
)

// Searcher is the subset of the provider client the resolver needs.
type Searcher interface {
	SearchTeams(ctx context.Context, term string, leagueID int, season string) ([]apisports.TeamEntry, error)
	SearchPlayers(ctx context.Context, term string) ([]apisports.Player, error)
}

// Resolver resolves team and player references against the static table and
// the provider search API.
type Resolver struct {
	provider Searcher
	leagueID int
	logger   *slog.Logger
}

// New creates a Resolver. provider may be nil, in which case only the static
// table is consulted for teams and player resolution always fails.
func New(provider Searcher, leagueID int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{provider: provider, leagueID: leagueID, logger: logger}
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// ResolveTeam maps a free-text team name to a canonical identity.
//
// Resolution order, first match wins:
//  1. static table, canonical key contained in the input
//  2. provider search: full term, then last word, then first word;
//     league-filtered, bidirectional substring match on name/nickname/city/code
//  3. static table loosened to any-word match
//
// Returns ok=false when the team cannot be resolved; callers must treat that
// as "team not found", not as a fault.
func (r *Resolver) ResolveTeam(ctx context.Context, name string, s season.Season) (TeamIdentity, bool) {
	searchTerm := strings.ToLower(strings.TrimSpace(name))
	if searchTerm == "" {
		return TeamIdentity{}, false
	}

	if id, ok := lookupStatic(searchTerm); ok {
		return id, true
	}

	if id, ok := r.searchProvider(ctx, searchTerm, s); ok {
		return id, true
	}

	return lookupStaticLoose(searchTerm)
}

func (r *Resolver) searchProvider(ctx context.Context, searchTerm string, s season.Season) (TeamIdentity, bool) {
	if r.provider == nil {
		return TeamIdentity{}, false
	}

	terms := []string{searchTerm}
	if parts := strings.Fields(searchTerm); len(parts) > 1 {
		terms = append(terms, parts[len(parts)-1], parts[0])
	}

	for _, term := range terms {
		entries, err := r.provider.SearchTeams(ctx, term, r.leagueID, s.String())
		if err != nil {
			r.logger.Warn("provider team search failed", "term", term, "error", err)
			continue
		}
		for _, entry := range entries {
			if entry.League.ID.String() != strconv.Itoa(r.leagueID) {
				continue
			}
			fields := []string{
				strings.ToLower(entry.Team.Name),
				strings.ToLower(entry.Team.Nickname),
				strings.ToLower(entry.Team.City),
				strings.ToLower(entry.Team.Code),
			}
			for _, f := range fields {
				if f == "" {
					continue
				}
				if strings.Contains(searchTerm, f) || strings.Contains(f, searchTerm) {
					return TeamIdentity{Name: entry.Team.Name, ID: entry.Team.ID}, true
				}
			}
		}
	}

	return TeamIdentity{}, false
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// ResolvePlayer maps a free-text player name to an api-sports player id.
// The full candidate list from the surname search is always returned for
// caller-side debugging.
//
// Preference order among candidates: exact full-name match in either order,
// then both name tokens present as substrings, then USA Guards, then any USA
// player, finally the first search result.
func (r *Resolver) ResolvePlayer(ctx context.Context, name string) (int, []apisports.Player, bool) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if lowerName == "" || r.provider == nil {
		return 0, nil, false
	}

	words := strings.Fields(lowerName)
	first := ""
	if len(words) > 1 {
		first = words[0]
	}
	last := words[len(words)-1]

	players, err := r.provider.SearchPlayers(ctx, last)
	if err != nil {
		r.logger.Warn("provider player search failed", "term", last, "error", err)
		return 0, nil, false
	}
	if len(players) == 0 {
		return 0, nil, false
	}

	for _, p := range players {
		pname := strings.ToLower(p.Name)
		if pname == lowerName || pname == last+" "+first || pname == first+" "+last {
			return p.ID, players, true
		}
	}

	for _, p := range players {
		pname := strings.ToLower(p.Name)
		if strings.Contains(pname, last) && strings.Contains(pname, first) {
			return p.ID, players, true
		}
	}

	// Coarse tie-break inherited from upstream: prefer USA Guards, then any
	// USA player.
	for _, p := range players {
		if p.Country == "USA" && p.Position == "Guard" {
			return p.ID, players, true
		}
	}
	for _, p := range players {
		if p.Country == "USA" {
			return p.ID, players, true
		}
	}

	return players[0].ID, players, true
}
