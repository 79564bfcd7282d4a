package jobs

import (
	"sort"
	"strings"
)

// EnrichedPosting is a RawPosting annotated with regional classification.
type EnrichedPosting struct {
	Title               string  `json:"title"`
	Company             string  `json:"company"`
	Location            string  `json:"location"`
	ApplyURL            string  `json:"job_link"`
	PostedDate          string  `json:"posted_date"`
	RegionMatch         bool    `json:"region_match"`
	InferredSalaryRange *string `json:"inferred_salary_range"`
	RemoteFlag          bool    `json:"remote_flag"`
	MarketAlignment     int     `json:"market_alignment"`
}

// alignmentPerKeyword is the score contribution per matched prior keyword.
const alignmentPerKeyword = 20

// Classify annotates a raw posting with remote/region/alignment signals.
// region and location are the caller's normalized filters, not the posting's
// own location.
func Classify(p RawPosting, region, location string, priors TechPriors) EnrichedPosting {
	posted := p.PostedDate
	if posted == "" {
		posted = "Unknown"
	}
	return EnrichedPosting{
		Title:           p.Title,
		Company:         p.Company,
		Location:        p.Location,
		ApplyURL:        p.ApplyURL,
		PostedDate:      posted,
		RegionMatch:     regionMatch(p.Location, region, location),
		RemoteFlag:      isRemote(p.Title, p.Location),
		MarketAlignment: marketAlignment(p.Title, priors),
	}
}

// isRemote detects remote-friendly postings from title and location text.
func isRemote(title, loc string) bool {
	ll := strings.ToLower(loc)
	tt := strings.ToLower(title)
	return strings.Contains(ll, "remote") || strings.Contains(tt, "remote") ||
		strings.Contains(tt, "work from home")
}

// marketAlignment scores a title against regional priors, capped at 100.
func marketAlignment(title string, priors TechPriors) int {
	text := strings.ToLower(title)
	score := 0
	for _, kw := range priors.Tech {
		if strings.Contains(text, kw) {
			score += alignmentPerKeyword
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// regionMatch reports whether a posting's location belongs to the selected
// region. With neither a region nor a location filter there is nothing to
// match against, so the flag stays false.
func regionMatch(postingLoc, region, location string) bool {
	if region == "" && location == "" {
		return false
	}
	return locationInRegion(postingLoc, region)
}

// locationInRegion checks region membership by country-term containment.
// No region filter means everything matches. A region without a known
// country list falls back to matching the raw region name itself.
func locationInRegion(postingLoc, region string) bool {
	if region == "" {
		return true
	}
	lk := strings.ToLower(postingLoc)
	rkey := strings.ToLower(region)
	countries := CountriesFor(rkey)
	if len(countries) == 0 {
		return strings.Contains(lk, rkey)
	}
	for _, c := range countries {
		if strings.Contains(lk, c) {
			return true
		}
	}
	return false
}

// FilterAndRank applies the region filter and sorts postings by preference.
// When a region is selected, only region-matching postings survive, except
// that remote postings are kept when the caller prefers remote work.
// Order: remote-preferred first, then region matches, then by descending
// market alignment; ties keep scrape order.
func FilterAndRank(list []EnrichedPosting, region string, remoteOnly bool) []EnrichedPosting {
	if strings.TrimSpace(region) != "" {
		kept := make([]EnrichedPosting, 0, len(list))
		for _, j := range list {
			if j.RegionMatch || (remoteOnly && j.RemoteFlag) {
				kept = append(kept, j)
			}
		}
		list = kept
	}

	sort.SliceStable(list, func(i, k int) bool {
		a, b := rankKey(list[i], remoteOnly), rankKey(list[k], remoteOnly)
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return list
}

// rankKey builds the 3-part ascending sort key for a posting.
func rankKey(j EnrichedPosting, remoteOnly bool) [3]int {
	var k [3]int
	if !(remoteOnly && j.RemoteFlag) {
		k[0] = 1
	}
	if !j.RegionMatch {
		k[1] = 1
	}
	k[2] = -j.MarketAlignment
	return k
}
