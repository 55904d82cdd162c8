// tubestudy — YouTube study assistant MCP server.
//
// Turns YouTube videos into learning material: transcripts, summaries,
// quizzes, flashcards, grounded chat, and personalized learning paths.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/study"
	"tubestudy/internal/studyserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8895")
)

func main() {
	initEngine()

	slog.Info("starting tubestudy",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tubestudy",
		Version: version,
	}, nil)

	studyserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 13))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "tubestudy",
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
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.5),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 16384),
		LLMCallsPerMinute:    env.Int("LLM_CALLS_PER_MINUTE", 30),
		TranscriptLangs:      env.List("TRANSCRIPT_LANGS", "en"),
		MaxTranscriptChars:   env.Int("MAX_TRANSCRIPT_CHARS", 8000),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	var opts []stealth.ClientOption
	opts = append(opts, stealth.WithTimeout(15))

	if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
		pool, err := proxypool.NewWebshare(apiKey)
		if err != nil {
			slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
		} else {
			opts = append(opts, stealth.WithProxyPool(pool))
			slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
		}
	}

	bc, err := stealth.NewClient(opts...)
	if err != nil {
		slog.Error("stealth client init failed", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("stealth browser client initialized")
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)
	engine.InitCache(
		env.Str("REDIS_URL", ""),
		env.Duration("CACHE_TTL", time.Hour),
		c.CacheMaxEntries,
		c.CacheCleanupInterval,
	)

	// User data store (optional Postgres)
	if c.DatabaseURL != "" {
		udb, err := study.ConnectUserDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("user DB init failed", slog.Any("error", err))
		} else {
			study.SetUserDB(udb)
		}
	}
}
