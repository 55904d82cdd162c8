package video

import (
	"errors"
	"strings"
)

// Classify converts a transcript fetch error into a user-facing Error.
// Typed sentinels are matched first; the substring table only exists as a
// last resort for messages that bubble up from lower layers untyped.
func Classify(err error) *Error {
	switch {
	case errors.Is(err, errEmptyTranscript):
		return &Error{Kind: KindNoCaptions, Message: "No transcript available for this video"}
	case errors.Is(err, errNoCaptionTracks):
		return &Error{Kind: KindNoCaptions, Message: "No transcript available for this video"}
	case errors.Is(err, errNoEnglishTrack):
		return &Error{
			Kind:    KindNoEnglish,
			Message: "No transcript is available in the requested language. Try a different video.",
		}
	}
	return classifyMessage(err.Error())
}

// classifyMessage maps known failure text to friendly messages. Matching is
// case-insensitive and ordered: the first matching row wins.
func classifyMessage(msg string) *Error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "http error 400"):
		return &Error{
			Kind:    KindFetch,
			Message: "Unable to access video. The video might be private or restricted.",
		}
	case strings.Contains(lower, "video unavailable"):
		return &Error{
			Kind:    KindFetch,
			Message: "This video is unavailable or doesn't exist.",
		}
	case strings.Contains(lower, "no transcript"):
		return &Error{
			Kind:    KindNoCaptions,
			Message: "No transcript found for this video. The video might not have captions enabled.",
		}
	case strings.Contains(lower, "transcript is disabled"):
		return &Error{
			Kind:    KindNoCaptions,
			Message: "Transcripts are disabled for this video by the content creator.",
		}
	case strings.Contains(lower, "available transcript"):
		return &Error{
			Kind:    KindNoEnglish,
			Message: "No transcript is available in the requested language. Try a different video.",
		}
	case strings.Contains(lower, "invalid parameter"), strings.Contains(lower, "not found"):
		return &Error{
			Kind:    KindInvalidURL,
			Message: "Invalid YouTube video ID or video not found. Please check the URL.",
		}
	}
	return &Error{Kind: KindFetch, Message: "Error extracting transcript: " + msg}
}
