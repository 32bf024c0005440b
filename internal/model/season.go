package model

import (
	"sort"
	"strings"
)

// Seasons lists the known seasons in calendar order.
var Seasons = []string{"Spring", "Summer", "Fall", "Winter"}

var seasonAliases = map[string]string{
	"spring": "Spring",
	"summer": "Summer",
	"fall":   "Fall",
	"autumn": "Fall",
	"winter": "Winter",
}

// NormalizeSeason canonicalises the spelling of a known season and
// returns any other value trimmed but otherwise untouched.
func NormalizeSeason(s string) string {
	s = strings.TrimSpace(s)
	if canon, ok := seasonAliases[strings.ToLower(s)]; ok {
		return canon
	}
	return s
}

// seasonRank returns the calendar position of a known season, or
// len(Seasons) for anything else.
func seasonRank(s string) int {
	for i, known := range Seasons {
		if known == s {
			return i
		}
	}
	return len(Seasons)
}

// SortBySeason orders category popularity rows Spring, Summer, Fall,
// Winter; unknown seasons follow in alphabetical order.
func SortBySeason(rows []CategoryPopularity) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := seasonRank(rows[i].Season), seasonRank(rows[j].Season)
		if ri != rj {
			return ri < rj
		}
		return rows[i].Season < rows[j].Season
	})
}
