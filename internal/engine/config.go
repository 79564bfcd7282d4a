package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey            string
	LLMAPIKeyFallbacks   []string
	LLMAPIBase           string
	LLMModel             string
	LLMTemperature       float64
	LLMMaxTokens         int
	FetchTimeout         time.Duration
	GithubToken          string
	StackExchangeKey     string
	ScrapePageDelayMin   time.Duration // lower bound of the randomized inter-page delay
	ScrapePageDelayMax   time.Duration // upper bound of the randomized inter-page delay
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	BrowserClient        *BrowserClient // nil = net/http fallback for the job gateway
	LLMClient            *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Called once at process start; the configuration is read-only afterward.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
