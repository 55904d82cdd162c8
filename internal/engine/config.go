package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	stealth "github.com/anatolykoptev/go-stealth"
)

// Config holds all engine configuration, injected from main.
// Initialization is eager: main builds every client before the server
// accepts requests, so no lazy-init locking is needed afterwards.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMCallsPerMinute  int

	TranscriptLangs    []string // language preference order, usually ["en"]
	MaxTranscriptChars int      // cap on transcript chars sent to the LLM

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	DatabaseURL string // optional Postgres user-data store

	HTTPClient    *http.Client
	BrowserClient *stealth.BrowserClient // nil = watch-page fallback uses plain HTTP
	LLMClient     *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (video, study).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	initLimiter(c.LLMCallsPerMinute)
}
