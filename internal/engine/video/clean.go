package video

import (
	"regexp"
	"strings"
)

var (
	// srtTimestampRE matches SRT-style cue timing lines: H:MM:SS,mmm --> H:MM:SS,mmm.
	srtTimestampRE = regexp.MustCompile(`\d+:\d{2}:\d{2},\d{3} --> \d+:\d{2}:\d{2},\d{3}`)
	// seqLineRE matches lines holding only a cue sequence number.
	seqLineRE    = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// CleanTranscript strips subtitle artifacts from raw caption text: cue
// timestamps, standalone sequence numbers, and redundant whitespace.
// Idempotent — cleaning already-clean text yields the same text.
func CleanTranscript(text string) string {
	text = srtTimestampRE.ReplaceAllString(text, "")
	text = seqLineRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
