package engine

import (
	stealth "github.com/anatolykoptev/go-stealth"
)

// Re-export stealth types and helpers for engine consumers. The watch-page
// fallback in video/ sends requests through the browser-fingerprint client
// so they look like an ordinary Chrome session to YouTube.
type BrowserClient = stealth.BrowserClient

// ChromeHeaders returns spoofed Chrome request headers (user-agent,
// accept-language, accept) for scraping paths.
func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }

// RandomUserAgent returns a rotating desktop browser User-Agent string.
func RandomUserAgent() string { return stealth.RandomUserAgent() }
