package study

import (
	"context"
	"strings"
	"testing"

	"tubestudy/internal/engine/video"
)

func TestSampleTranscript(t *testing.T) {
	short := "a short transcript"
	if got := sampleTranscript(short, 2000); got != short {
		t.Errorf("short transcript should pass through, got %q", got)
	}

	long := strings.Repeat("x", 3000) + strings.Repeat("y", 3000)
	got := sampleTranscript(long, 2000)
	if len(got) > 2000+3 {
		t.Errorf("sample too long: %d", len(got))
	}
	if !strings.HasPrefix(got, "xxx") {
		t.Error("sample should start at the beginning")
	}
	if !strings.Contains(got, "...") {
		t.Error("sample should mark the gap")
	}
	// The tail comes from around the midpoint.
	if !strings.Contains(got[len(got)-100:], "y") && !strings.Contains(got[len(got)-100:], "x") {
		t.Error("sample should include middle content")
	}
}

func TestSummaryTargets(t *testing.T) {
	tests := []struct {
		length SummaryLength
		words  int
		points int
	}{
		{LengthConcise, 150, 3},
		{LengthModerate, 300, 5},
		{LengthComprehensive, 500, 8},
		{"bogus", 300, 5},
	}
	for _, tt := range tests {
		words, points := summaryTargets(tt.length)
		if words != tt.words || points != tt.points {
			t.Errorf("summaryTargets(%q) = %d/%d, want %d/%d", tt.length, words, points, tt.words, tt.points)
		}
	}
}

func TestGenerateOverviewShortTranscript(t *testing.T) {
	got := GenerateOverview(context.Background(), "too short", video.Info{Title: "T"})
	if got.Description != "Unable to generate overview: Transcript too short or empty." {
		t.Errorf("Description = %q", got.Description)
	}
	if got.PrimaryTopic != "Unknown" {
		t.Errorf("PrimaryTopic = %q", got.PrimaryTopic)
	}
}

func TestGenerateSummaryShortTranscript(t *testing.T) {
	got, err := GenerateSummary(context.Background(), "   ", video.Info{}, LengthConcise)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SummaryText != "Unable to generate summary: Transcript too short or empty." {
		t.Errorf("SummaryText = %q", got.SummaryText)
	}
	if len(got.KeyPoints) == 0 || len(got.Topics) == 0 {
		t.Error("degraded summary should still carry key points and topics")
	}
}

func TestBackfillSummary(t *testing.T) {
	s := &VideoSummary{}
	backfillSummary(s)
	if s.SummaryText != "Summary not available." {
		t.Errorf("SummaryText = %q", s.SummaryText)
	}
	if len(s.KeyPoints) != 1 || len(s.Topics) != 1 {
		t.Errorf("backfill slices: %v %v", s.KeyPoints, s.Topics)
	}

	full := &VideoSummary{SummaryText: "t", KeyPoints: []string{"a"}, Topics: []string{"b"}}
	backfillSummary(full)
	if full.SummaryText != "t" || full.KeyPoints[0] != "a" || full.Topics[0] != "b" {
		t.Error("backfill must not overwrite existing fields")
	}
}

func TestRefineSummaryEmptyFeedback(t *testing.T) {
	current := &VideoSummary{SummaryText: "original"}
	if got := RefineSummary(context.Background(), current, "  "); got != current {
		t.Error("empty feedback should return the current summary untouched")
	}
}
