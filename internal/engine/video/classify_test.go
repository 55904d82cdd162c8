package video

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyTypedSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			"empty transcript",
			errEmptyTranscript,
			KindNoCaptions,
			"No transcript available for this video",
		},
		{
			"wrapped empty transcript",
			fmt.Errorf("strategy 2: %w", errEmptyTranscript),
			KindNoCaptions,
			"No transcript available for this video",
		},
		{
			"no caption tracks",
			errNoCaptionTracks,
			KindNoCaptions,
			"No transcript available for this video",
		},
		{
			"no caption tracks after fallback",
			fmt.Errorf("watch page: %w", errNoCaptionTracks),
			KindNoCaptions,
			"No transcript available for this video",
		},
		{
			"no english track",
			errNoEnglishTrack,
			KindNoEnglish,
			"No transcript is available in the requested language. Try a different video.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestClassifyMessageTable(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantKind Kind
		wantMsg  string
	}{
		{
			"http 400",
			"watch page: HTTP Error 400",
			KindFetch,
			"Unable to access video. The video might be private or restricted.",
		},
		{
			"video unavailable",
			"captions unavailable: Video unavailable",
			KindFetch,
			"This video is unavailable or doesn't exist.",
		},
		{
			"no transcript",
			"no transcript found",
			KindNoCaptions,
			"No transcript found for this video. The video might not have captions enabled.",
		},
		{
			"transcripts disabled",
			"Transcript is disabled on this video",
			KindNoCaptions,
			"Transcripts are disabled for this video by the content creator.",
		},
		{
			"language mismatch",
			"no available transcript in de",
			KindNoEnglish,
			"No transcript is available in the requested language. Try a different video.",
		},
		{
			"invalid parameter",
			"API said: Invalid parameter",
			KindInvalidURL,
			"Invalid YouTube video ID or video not found. Please check the URL.",
		},
		{
			"not found",
			"video not found",
			KindInvalidURL,
			"Invalid YouTube video ID or video not found. Please check the URL.",
		},
		{
			"fallthrough",
			"connection reset by peer",
			KindFetch,
			"Error extracting transcript: connection reset by peer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(errors.New(tt.msg))
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

// The 400 row must win even when the message also mentions unavailability.
func TestClassifyPriority(t *testing.T) {
	got := Classify(errors.New("HTTP Error 400: video unavailable"))
	if got.Message != "Unable to access video. The video might be private or restricted." {
		t.Errorf("Message = %q", got.Message)
	}
}
