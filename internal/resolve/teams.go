// Package resolve maps free-text team and player references to canonical
// names and api-sports identifiers.
//
// Provider fuzzy search is unreliable for abbreviations and common nicknames,
// so a static table decides the well-known cases deterministically; layered
// provider search covers the long tail.
package resolve

import "strings"

// TeamIdentity is a canonical full team name plus its api-sports id.
type TeamIdentity struct {
	Name string
	ID   int
}

// knownTeam is one row of the static lookup table.
type knownTeam struct {
	key  string // lower-case canonical name, matched by substring
	name string // canonical display name
	id   int    // api-sports team id
}

// knownTeams is the static table of api-sports NBA team ids. Kept as an
// ordered slice so substring matching is deterministic.
var knownTeams = []knownTeam{
	{"atlanta hawks", "Atlanta Hawks", 132},
	{"boston celtics", "Boston Celtics", 133},
	{"brooklyn nets", "Brooklyn Nets", 134},
	{"charlotte hornets", "Charlotte Hornets", 135},
	{"chicago bulls", "Chicago Bulls", 136},
	{"cleveland cavaliers", "Cleveland Cavaliers", 137},
	{"dallas mavericks", "Dallas Mavericks", 138},
	{"denver nuggets", "Denver Nuggets", 139},
	{"detroit pistons", "Detroit Pistons", 140},
	{"golden state warriors", "Golden State Warriors", 141},
	{"houston rockets", "Houston Rockets", 142},
	{"indiana pacers", "Indiana Pacers", 143},
	{"los angeles clippers", "Los Angeles Clippers", 144},
	{"los angeles lakers", "Los Angeles Lakers", 145},
	{"memphis grizzlies", "Memphis Grizzlies", 146},
	{"miami heat", "Miami Heat", 147},
	{"milwaukee bucks", "Milwaukee Bucks", 148},
	{"minnesota timberwolves", "Minnesota Timberwolves", 149},
	{"new orleans pelicans", "New Orleans Pelicans", 150},
	{"new york knicks", "New York Knicks", 151},
	{"oklahoma city thunder", "Oklahoma City Thunder", 152},
	{"orlando magic", "Orlando Magic", 153},
	{"philadelphia 76ers", "Philadelphia 76ers", 154},
	{"phoenix suns", "Phoenix Suns", 155},
	{"portland trail blazers", "Portland Trail Blazers", 156},
	{"sacramento kings", "Sacramento Kings", 157},
	{"san antonio spurs", "San Antonio Spurs", 158},
	{"team giannis", "Team Giannis", 1411},
	{"team lebron", "Team LeBron", 1412},
	{"toronto raptors", "Toronto Raptors", 159},
	{"utah jazz", "Utah Jazz", 160},
	{"washington wizards", "Washington Wizards", 161},
}

// teamAliases maps abbreviations and nicknames to canonical full names.
var teamAliases = map[string]string{
	"okc":      "Oklahoma City Thunder",
	"thunder":  "Oklahoma City Thunder",
	"lal":      "Los Angeles Lakers",
	"lakers":   "Los Angeles Lakers",
	"gsw":      "Golden State Warriors",
	"warriors": "Golden State Warriors",
	"bos":      "Boston Celtics",
	"celtics":  "Boston Celtics",
	// extend as needed
}

// CanonicalTeamName expands abbreviations and nicknames to the canonical
// full team name. Unknown names pass through unchanged; empty stays empty.
func CanonicalTeamName(name string) string {
	if name == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if full, ok := teamAliases[key]; ok {
		return full
	}
	return name
}

// KnownTeams returns the static table as canonical identities, in table
// order. Used by the CLI.
func KnownTeams() []TeamIdentity {
	out := make([]TeamIdentity, len(knownTeams))
	for i, kt := range knownTeams {
		out[i] = TeamIdentity{Name: kt.name, ID: kt.id}
	}
	return out
}

// lookupStatic returns the first static entry whose key is contained in the
// search term.
func lookupStatic(searchTerm string) (TeamIdentity, bool) {
	for _, kt := range knownTeams {
		if strings.Contains(searchTerm, kt.key) {
			return TeamIdentity{Name: kt.name, ID: kt.id}, true
		}
	}
	return TeamIdentity{}, false
}

// lookupStaticLoose matches when any word of a static key appears in the
// search term. Last-resort fallback after provider search fails.
func lookupStaticLoose(searchTerm string) (TeamIdentity, bool) {
	for _, kt := range knownTeams {
		for _, word := range strings.Fields(kt.key) {
			if strings.Contains(searchTerm, word) {
				return TeamIdentity{Name: kt.name, ID: kt.id}, true
			}
		}
	}
	return TeamIdentity{}, false
}
