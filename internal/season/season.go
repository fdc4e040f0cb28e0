// Package season normalizes NBA season strings to the canonical
// "YYYY-YYYY" form. An NBA season spans two calendar years, so "the 2022
// season" means 2021-2022 while a query parameter "2022" means 2022-2023.
//
// All functions are pure: no I/O, deterministic, no package state.
package season

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Season is a canonical "YYYY-YYYY" season string.
type Season string

var (
	// rangePattern matches "2023-24", "2023/24", "2023-2024", "2023 / 2024".
	rangePattern = regexp.MustCompile(`(20\d{2})\s*[-/]\s*(\d{2,4})`)

	// yearPattern matches a bare 4-digit year in the 2000s.
	yearPattern = regexp.MustCompile(`(20\d{2})`)
)

// Infer extracts a season from free text.
//
//	"2023-24" or "2023/24" -> "2023-2024"
//	"2022 season"          -> "2021-2022" (bare year is the season's end)
//
// Returns ok=false when no year pattern is present; callers fall back to a
// configured default. The 2-digit suffix is expanded with the start year's
// century unconditionally, so a hypothetical "2099-00" would not roll over
// to 2100 — kept as-is until product intent says otherwise.
func Infer(text string) (Season, bool) {
	if text == "" {
		return "", false
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		start, _ := strconv.Atoi(m[1])
		suffix, _ := strconv.Atoi(m[2])
		end := suffix
		if len(m[2]) == 2 {
			end = (start/100)*100 + suffix
		}
		return Season(fmt.Sprintf("%d-%d", start, end)), true
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		if year > 1950 && year < 2100 {
			return Season(fmt.Sprintf("%d-%d", year-1, year)), true
		}
	}

	return "", false
}

// Normalize canonicalizes an explicit season parameter, as supplied to the
// stats API. Unlike Infer, a bare year here is the season's *start*:
//
//	"2023"      -> "2023-2024"
//	"2023-24"   -> "2023-2024"
//	"2023-2024" -> "2023-2024"
//
// Returns ok=false for empty or unparseable input.
func Normalize(raw string) (Season, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		start, _ := strconv.Atoi(m[1])
		suffix, _ := strconv.Atoi(m[2])
		end := suffix
		if len(m[2]) == 2 {
			end = (start/100)*100 + suffix
		}
		return Season(fmt.Sprintf("%d-%d", start, end)), true
	}

	if year, err := strconv.Atoi(s); err == nil && year > 1950 && year < 2100 {
		return Season(fmt.Sprintf("%d-%d", year, year+1)), true
	}

	return "", false
}

// OrDefault returns s when non-empty, otherwise def.
func OrDefault(s Season, def Season) Season {
	if s != "" {
		return s
	}
	return def
}

// String implements fmt.Stringer.
func (s Season) String() string { return string(s) }
