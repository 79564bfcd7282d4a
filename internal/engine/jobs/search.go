package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// SearchRequest is the inbound job search contract.
type SearchRequest struct {
	Keywords   string
	Location   string
	Region     string
	MaxJobs    int
	RemoteOnly bool
	Currency   string
}

// SearchResult is the outbound contract. Failures are reported in-band via
// Success=false; the orchestrator never returns an error.
type SearchResult struct {
	Success    bool              `json:"success"`
	Jobs       []EnrichedPosting `json:"jobs"`
	TotalFound int               `json:"total_found"`
	Keywords   string            `json:"keywords"`
	Location   string            `json:"location"`
	Region     string            `json:"region"`
	RemoteOK   bool              `json:"remote_ok"`
	Currency   string            `json:"currency"`
	Error      string            `json:"error,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// failure builds the in-band error shape.
func failure(err error) SearchResult {
	return SearchResult{
		Success: false,
		Error:   err.Error(),
		Message: "Failed to search for jobs",
	}
}

// Search runs the full pipeline: normalize terms, resolve the single search
// location, scrape, classify, filter, rank. All failures surface as a
// structured result, never as a panic or error return.
func (s *Scraper) Search(ctx context.Context, req SearchRequest) SearchResult {
	engine.IncrSearchRequests()

	if strings.TrimSpace(req.Keywords) == "" {
		return failure(fmt.Errorf("keywords are required"))
	}
	if req.MaxJobs < 0 {
		return failure(fmt.Errorf("max_jobs must be non-negative"))
	}

	location := NormalizeTerm(req.Location)
	region := NormalizeTerm(req.Region)

	// One location term per request: explicit location wins, then the
	// region's preferred country, then the raw region name.
	var searchLocation string
	switch {
	case location != "":
		searchLocation = location
	case len(CountriesFor(region)) > 0:
		searchLocation = PreferredDefault(region)
		if searchLocation == "" {
			searchLocation = CountriesFor(region)[0]
		}
	default:
		searchLocation = region
	}

	var raw []RawPosting
	if req.MaxJobs > 0 {
		_ = engine.TrackOperation(ctx, "scrape:"+req.Keywords, func(ctx context.Context) error {
			raw = s.Scrape(ctx, req.Keywords, searchLocation, req.MaxJobs)
			return nil
		})
	}

	priors := PriorsFor(firstNonEmpty(region, location))

	enriched := make([]EnrichedPosting, 0, len(raw))
	for _, p := range raw {
		enriched = append(enriched, Classify(p, region, location, priors))
	}

	enriched = FilterAndRank(enriched, region, req.RemoteOnly)

	slog.Info("job search complete",
		slog.String("keywords", req.Keywords),
		slog.String("search_location", searchLocation),
		slog.Int("scraped", len(raw)),
		slog.Int("returned", len(enriched)))

	return SearchResult{
		Success:    true,
		Jobs:       enriched,
		TotalFound: len(enriched),
		Keywords:   req.Keywords,
		Location:   location,
		Region:     region,
		RemoteOK:   req.RemoteOnly,
		Currency:   req.Currency,
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
