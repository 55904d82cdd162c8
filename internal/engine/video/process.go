package video

import (
	"context"
	"errors"
	"fmt"

	"tubestudy/internal/engine"
)

// minTranscriptLen is the minimum cleaned-transcript length considered usable.
const minTranscriptLen = 10

const noValidTranscriptMsg = "No valid transcript available for this video. The video might not have captions or subtitles."

// Process resolves a raw URL or ID into video metadata and a transcript
// result. It never returns a Go error: every failure mode is folded into the
// Transcript's tagged Error so callers always get a renderable pair.
func Process(ctx context.Context, rawURL string) (info Info, tr Transcript) {
	defer func() {
		if r := recover(); r != nil {
			info = errorInfo()
			tr = Transcript{Err: &Error{
				Kind:    KindUnexpected,
				Message: fmt.Sprintf("Error processing video: %v", r),
			}}
		}
	}()
	engine.IncrVideosProcessed()

	id, err := ExtractVideoID(rawURL)
	if err != nil {
		detail := err.Error()
		var ve *Error
		if errors.As(err, &ve) {
			detail = ve.Message
		}
		info = errorInfo()
		tr = Transcript{Err: &Error{
			Kind:    KindInvalidURL,
			Message: "Invalid YouTube URL: " + detail,
		}}
		return info, tr
	}

	info = BuildInfo(id)
	text, err := FetchTranscript(ctx, id)
	tr = finalizeTranscript(text, err)
	return info, tr
}

// finalizeTranscript turns a fetch outcome into the tagged result: fetch
// errors are classified, and transcripts too short to be meaningful are
// treated as missing captions.
func finalizeTranscript(text string, err error) Transcript {
	if err != nil {
		return Transcript{Err: Classify(err)}
	}
	if len(text) < minTranscriptLen {
		return Transcript{Err: &Error{Kind: KindNoCaptions, Message: noValidTranscriptMsg}}
	}
	return Transcript{Text: text}
}

// errorInfo is the degraded metadata stub returned when processing fails
// before a video ID is known.
func errorInfo() Info {
	return Info{
		Title:     "Error Processing Video",
		Channel:   "Unknown Channel",
		Published: "Unknown",
	}
}
