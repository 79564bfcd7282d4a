package careerserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/anatolykoptev/go_career/internal/engine/jobs"
	"github.com/anatolykoptev/go_career/internal/toolutil"
)

// JobSearchInput is the job_search tool contract.
type JobSearchInput struct {
	Keywords   string `json:"keywords" jsonschema:"Job search keywords, e.g. 'golang developer' or 'Data Scientist OR ML Engineer'"`
	Location   string `json:"location,omitempty" jsonschema:"Country or city to search in; common aliases (uk, uae, usa) are normalized"`
	Region     string `json:"region,omitempty" jsonschema:"Region filter: europe, north america, mena, north africa, sub-saharan africa, asia"`
	MaxJobs    int    `json:"max_jobs,omitempty" jsonschema:"Maximum postings to collect (default: 50)"`
	RemoteOnly bool   `json:"remote_only,omitempty" jsonschema:"Prefer remote postings; keeps remote jobs even outside the region filter"`
	Currency   string `json:"currency,omitempty" jsonschema:"Preferred salary currency, echoed in the response"`
	SaveTo     string `json:"save_to,omitempty" jsonschema:"Optional file path to save results as JSON"`
}

func registerJobSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_search",
		Description: "Search LinkedIn job postings by keywords with optional location/region filtering, remote preference and regional market-alignment ranking. Failures are reported in the response body (success=false), never as tool errors.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobSearchInput) (*mcp.CallToolResult, jobs.SearchResult, error) {
		maxJobs := input.MaxJobs
		if maxJobs == 0 {
			maxJobs = 50
		}

		cacheKey := engine.CacheKey("job_search", input.Keywords, input.Location, input.Region,
			fmt.Sprintf("max_%d_remote_%t_cur_%s", maxJobs, input.RemoteOnly, input.Currency))
		if out, ok := toolutil.CacheLoadJSON[jobs.SearchResult](ctx, cacheKey); ok {
			return nil, out, nil
		}

		scraper := jobs.NewScraper()
		out := scraper.Search(ctx, jobs.SearchRequest{
			Keywords:   input.Keywords,
			Location:   input.Location,
			Region:     input.Region,
			MaxJobs:    maxJobs,
			RemoteOnly: input.RemoteOnly,
			Currency:   input.Currency,
		})

		if out.Success {
			toolutil.CacheStoreJSON(ctx, cacheKey, out)
			if input.SaveTo != "" {
				if err := jobs.SaveResults(out.Jobs, input.SaveTo); err != nil {
					slog.Warn("job_search: save failed", slog.String("path", input.SaveTo), slog.Any("error", err))
				}
			}
		}
		return nil, out, nil
	})
}
