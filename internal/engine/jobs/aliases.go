package jobs

import "strings"

// locationAliases maps common country codes and spelling variants to the
// canonical names the job source understands. Keys are lowercase.
var locationAliases = map[string]string{
	// MENA common
	"uae":   "united arab emirates",
	"u.a.e": "united arab emirates",
	"ksa":   "saudi arabia",
	// Europe/North America common
	"uk":     "united kingdom",
	"u.k.":   "united kingdom",
	"us":     "united states",
	"u.s.":   "united states",
	"usa":    "united states",
	"u.s.a.": "united states",
	// Other variants
	"czech":       "czechia",
	"ivory coast": "cote d'ivoire",
	"drc":         "democratic republic of the congo",
	"dr congo":    "democratic republic of the congo",
}

// NormalizeTerm canonicalizes a location or region term. Unknown terms are
// returned trimmed but otherwise unchanged; empty input returns "".
func NormalizeTerm(term string) string {
	if term == "" {
		return ""
	}
	t := strings.ToLower(strings.TrimSpace(term))
	if canonical, ok := locationAliases[t]; ok {
		return canonical
	}
	return strings.TrimSpace(term)
}
