package jobs

import "strings"

// TechPriors describes the in-demand technologies and estimated remote-work
// share for a market.
type TechPriors struct {
	Tech   []string
	Remote float64
}

// regionCountries maps a region key to terms that identify member countries
// in free-form location strings. All entries lowercase; matching is by
// substring containment.
var regionCountries = map[string][]string{
	"europe": {
		"europe", "eu",
		"united kingdom", "uk", "england", "scotland", "wales", "northern ireland",
		"ireland", "france", "germany", "spain", "portugal", "italy",
		"netherlands", "belgium", "luxembourg", "switzerland", "austria",
		"poland", "czechia", "czech", "slovakia", "hungary", "romania", "bulgaria",
		"greece", "sweden", "norway", "denmark", "finland", "iceland",
		"estonia", "latvia", "lithuania", "slovenia", "croatia",
		"bosnia", "bosnia and herzegovina", "serbia", "montenegro", "kosovo", "albania",
		"north macedonia", "macedonia", "moldova", "ukraine", "belarus",
		"cyprus", "malta", "monaco", "andorra", "san marino", "liechtenstein", "vatican",
	},
	"north america": {
		"united states", "usa", "us", "u.s.", "u.s.a.",
		"canada", "mexico", "north america",
	},
	"mena": {
		"mena", "middle east",
		"algeria", "bahrain", "egypt", "iran", "iraq", "israel",
		"jordan", "kuwait", "lebanon", "libya", "morocco", "oman",
		"palestine", "qatar", "saudi arabia", "saudi", "ksa",
		"syria", "tunisia", "united arab emirates", "uae", "yemen",
		"western sahara",
	},
	"north africa": {
		"north africa", "maghreb",
		"morocco", "algeria", "tunisia", "libya", "egypt", "sudan", "mauritania", "western sahara",
	},
	"sub-saharan africa": {
		"sub-saharan", "sub saharan",
		"nigeria", "ghana", "kenya", "south africa", "ethiopia", "rwanda", "uganda", "tanzania",
		"angola", "mozambique", "zambia", "zimbabwe", "botswana", "namibia", "cameroon",
		"dr congo", "democratic republic of the congo", "congo", "cote d'ivoire", "ivory coast",
		"senegal", "sierra leone", "liberia", "benin", "togo", "burkina faso", "mali", "niger",
		"guinea", "guinea-bissau", "gabon", "equatorial guinea", "eritrea", "somalia", "south sudan",
		"lesotho", "eswatini", "swaziland", "mauritius", "seychelles", "gambia",
	},
	"asia": {
		"asia",
		"china", "india", "japan", "south korea", "korea", "north korea",
		"singapore", "malaysia", "indonesia", "philippines", "vietnam", "thailand",
		"hong kong", "taiwan", "pakistan", "bangladesh", "sri lanka", "nepal",
		"cambodia", "laos", "myanmar", "burma", "mongolia", "brunei", "timor-leste", "east timor",
	},
}

// preferredCountry is the default search location when only a region is given.
var preferredCountry = map[string]string{
	"mena":               "united arab emirates",
	"north africa":       "morocco",
	"sub-saharan africa": "south africa",
	"europe":             "germany",
	"north america":      "united states",
	"asia":               "india",
}

// regionalPriors holds simple market priors per region. The "" entry is the
// fallback when no region key matches.
var regionalPriors = map[string]TechPriors{
	"north africa":       {Tech: []string{"python", "javascript", "react", "node", "devops"}, Remote: 0.6},
	"sub-saharan africa": {Tech: []string{"python", "java", "cloud", "data"}, Remote: 0.5},
	"mena":               {Tech: []string{"javascript", "react", "node", "devops"}, Remote: 0.5},
	"europe":             {Tech: []string{"typescript", "react", "java", "cloud"}, Remote: 0.7},
	"north america":      {Tech: []string{"typescript", "react", "python", "ml", "cloud"}, Remote: 0.8},
	"asia":               {Tech: []string{"java", "android", "cloud", "data"}, Remote: 0.6},
	"":                   {Tech: []string{}, Remote: 0.6},
}

// priorsOrder fixes the key iteration order for prior selection. Map
// iteration is randomized in Go, and the "sub-saharan africa" key must be
// probed before the bare "africa"-containing lookups hit shorter keys.
var priorsOrder = []string{
	"north africa",
	"sub-saharan africa",
	"mena",
	"europe",
	"north america",
	"asia",
}

// CountriesFor returns the country terms for a region key, or nil for an
// unknown region.
func CountriesFor(region string) []string {
	return regionCountries[strings.ToLower(region)]
}

// PreferredDefault returns the default search country for a region, or ""
// for an unknown region.
func PreferredDefault(region string) string {
	return preferredCountry[strings.ToLower(region)]
}

// PriorsFor selects market priors by the first known region key contained in
// regionOrLocation (case-insensitive). Falls back to the empty priors.
func PriorsFor(regionOrLocation string) TechPriors {
	key := strings.ToLower(regionOrLocation)
	for _, k := range priorsOrder {
		if strings.Contains(key, k) {
			return regionalPriors[k]
		}
	}
	return regionalPriors[""]
}
