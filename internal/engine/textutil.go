package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// User-Agent string for non-scraping API calls.
const UserAgentBot = "tubestudy/1.0"

// CleanHTML strips HTML tags, unescapes entities, and trims whitespace.
// Caption lines frequently carry <i>/<b> markup and entities like &amp;#39;.
func CleanHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	tok := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}
