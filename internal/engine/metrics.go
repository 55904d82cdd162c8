package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	VideosProcessed     atomic.Int64
	TranscriptRequests  atomic.Int64
	TranscriptFallbacks atomic.Int64
	TranscriptFailures  atomic.Int64
	LLMCalls            atomic.Int64
	LLMErrors           atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"videos_processed":     metrics.VideosProcessed.Load(),
		"transcript_requests":  metrics.TranscriptRequests.Load(),
		"transcript_fallbacks": metrics.TranscriptFallbacks.Load(),
		"transcript_failures":  metrics.TranscriptFailures.Load(),
		"llm_calls":            metrics.LLMCalls.Load(),
		"llm_errors":           metrics.LLMErrors.Load(),
		"cache_hits":           hits,
		"cache_misses":         misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"videos_processed",
		"transcript_requests", "transcript_fallbacks", "transcript_failures",
		"llm_calls", "llm_errors",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the video/ sub-package.
func IncrVideosProcessed()     { metrics.VideosProcessed.Add(1) }
func IncrTranscriptRequests()  { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptFallbacks() { metrics.TranscriptFallbacks.Add(1) }
func IncrTranscriptFailures()  { metrics.TranscriptFailures.Add(1) }

// Incrementors for LLM calls.
func IncrLLMCalls()  { metrics.LLMCalls.Add(1) }
func IncrLLMErrors() { metrics.LLMErrors.Add(1) }
