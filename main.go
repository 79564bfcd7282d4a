// go_career — career tooling MCP server.
//
// Orchestrates an LLM and several third-party web APIs (LinkedIn guest job
// listings, GitHub, Stack Exchange) behind MCP tools: regional job search
// with classification and ranking, CV analysis, interview simulation, resume
// rewriting, footprint analysis, and aggregate career reports.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_career/internal/careerserver"
	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_career",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_career",
		Version: version,
	}, nil)

	careerserver.RegisterTools(server)

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_career",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 16384),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		GithubToken:          env.Str("GITHUB_TOKEN", ""),
		StackExchangeKey:     env.Str("STACKEXCHANGE_KEY", ""),
		ScrapePageDelayMin:   env.Duration("SCRAPE_PAGE_DELAY_MIN", 2*time.Second),
		ScrapePageDelayMax:   env.Duration("SCRAPE_PAGE_DELAY_MAX", 5*time.Second),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	// LinkedIn blocks non-browser TLS fingerprints, so the job gateway
	// strongly prefers the Chrome-fingerprint client. The server still
	// starts without it and falls back to net/http.
	bc, err := engine.NewBrowserClient()
	if err != nil {
		slog.Warn("browser client init failed, gateway falls back to net/http", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("browser client initialized")
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
