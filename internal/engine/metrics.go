package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests        atomic.Int64
	LLMCalls              atomic.Int64
	LLMErrors             atomic.Int64
	ScrapePages           atomic.Int64
	ScrapeErrors          atomic.Int64
	JobDetailsRequests    atomic.Int64
	GitHubRequests        atomic.Int64
	StackOverflowRequests atomic.Int64
	CVAnalyses            atomic.Int64
	InterviewSessions     atomic.Int64
	ReportsGenerated      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":        metrics.SearchRequests.Load(),
		"llm_calls":              metrics.LLMCalls.Load(),
		"llm_errors":             metrics.LLMErrors.Load(),
		"scrape_pages":           metrics.ScrapePages.Load(),
		"scrape_errors":          metrics.ScrapeErrors.Load(),
		"job_details_requests":   metrics.JobDetailsRequests.Load(),
		"github_requests":        metrics.GitHubRequests.Load(),
		"stackoverflow_requests": metrics.StackOverflowRequests.Load(),
		"cv_analyses":            metrics.CVAnalyses.Load(),
		"interview_sessions":     metrics.InterviewSessions.Load(),
		"reports_generated":      metrics.ReportsGenerated.Load(),
		"cache_hits":             hits,
		"cache_misses":           misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "llm_calls", "llm_errors",
		"scrape_pages", "scrape_errors", "job_details_requests",
		"github_requests", "stackoverflow_requests",
		"cv_analyses", "interview_sessions", "reports_generated",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// IncrSearchRequests increments the job search counter.
func IncrSearchRequests() { metrics.SearchRequests.Add(1) }

// Incrementors for jobs/ sub-package.
func IncrScrapePages()        { metrics.ScrapePages.Add(1) }
func IncrScrapeErrors()       { metrics.ScrapeErrors.Add(1) }
func IncrJobDetailsRequests() { metrics.JobDetailsRequests.Add(1) }
func IncrCVAnalyses()         { metrics.CVAnalyses.Add(1) }
func IncrInterviewSessions()  { metrics.InterviewSessions.Add(1) }
func IncrReportsGenerated()   { metrics.ReportsGenerated.Add(1) }

// Incrementors for sources/ sub-package.
func IncrGitHubRequests()        { metrics.GitHubRequests.Add(1) }
func IncrStackOverflowRequests() { metrics.StackOverflowRequests.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
