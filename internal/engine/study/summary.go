package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/video"
)

// minStudyTranscript is the minimum transcript length worth sending to the
// LLM for analysis.
const minStudyTranscript = 50

// overviewSampleSize caps the transcript sample used for overviews.
const overviewSampleSize = 2000

// summaryChunkSize caps the transcript sent for summarization, leaving room
// for the prompt itself.
const summaryChunkSize = 7500

const truncationNote = "\n[Note: This is a portion of the full transcript due to length constraints]"

// sampleTranscript takes a representative sample of a long transcript: most
// of the budget from the beginning, the rest from the middle. Short
// transcripts pass through unchanged.
func sampleTranscript(transcript string, max int) string {
	if len(transcript) <= max {
		return transcript
	}
	beginning := transcript[:max*7/10]
	middleStart := len(transcript)/2 - max*15/100
	middleEnd := middleStart + max*3/10
	if middleEnd > len(transcript) {
		middleEnd = len(transcript)
	}
	return beginning + "..." + transcript[middleStart:middleEnd]
}

// GenerateOverview produces a quick orientation card for a video. It never
// fails: an unusable transcript or an LLM error yields a degraded overview
// with an explanatory description.
func GenerateOverview(ctx context.Context, transcript string, info video.Info) *VideoOverview {
	if len(strings.TrimSpace(transcript)) < minStudyTranscript {
		return &VideoOverview{
			Description:    "Unable to generate overview: Transcript too short or empty.",
			PrimaryTopic:   "Unknown",
			TargetAudience: "Unknown",
			ContentType:    "Unknown",
		}
	}

	prompt := fmt.Sprintf(overviewUserPrompt, info.Title, info.Channel,
		sampleTranscript(transcript, overviewSampleSize))
	overview, _, err := engine.CallLLMJSON[VideoOverview](ctx, overviewSystemPrompt, prompt,
		llm.WithChatTemperature(0.3))
	if err != nil {
		slog.Warn("overview generation failed", slog.String("video", info.ID), slog.Any("err", err))
		return &VideoOverview{
			Description:    "Unable to generate overview: " + engine.Truncate(err.Error(), 100),
			PrimaryTopic:   "Error",
			TargetAudience: "Unknown",
			ContentType:    "Unknown",
		}
	}

	if overview.Description == "" {
		overview.Description = "Overview not available."
	}
	if overview.PrimaryTopic == "" {
		overview.PrimaryTopic = "Topic not identified."
	}
	if overview.TargetAudience == "" {
		overview.TargetAudience = "Audience not identified."
	}
	if overview.ContentType == "" {
		overview.ContentType = "Content type not identified."
	}
	return overview
}

// summaryTargets maps a length preference to target word count and key
// point count.
func summaryTargets(length SummaryLength) (words, points int) {
	switch length {
	case LengthConcise:
		return 150, 3
	case LengthComprehensive:
		return 500, 8
	default:
		return 300, 5
	}
}

// GenerateSummary summarizes a transcript at the requested level of detail.
func GenerateSummary(ctx context.Context, transcript string, info video.Info, length SummaryLength) (*VideoSummary, error) {
	if len(strings.TrimSpace(transcript)) < minStudyTranscript {
		return &VideoSummary{
			SummaryText: "Unable to generate summary: Transcript too short or empty.",
			KeyPoints: []string{
				"Insufficient transcript content",
				"The video may have limited or no captions",
			},
			Topics: []string{"Error: Insufficient Content"},
		}, nil
	}

	if length == "" {
		length = LengthModerate
	}
	words, points := summaryTargets(length)

	chunk := transcript
	if len(chunk) > summaryChunkSize {
		chunk = chunk[:summaryChunkSize] + truncationNote
	}

	system := fmt.Sprintf(summarySystemPrompt, words, points)
	prompt := fmt.Sprintf(summaryUserPrompt, info.Title, info.Channel, chunk,
		strings.ToLower(string(length)))
	summary, _, err := engine.CallLLMJSON[VideoSummary](ctx, system, prompt,
		llm.WithChatTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	backfillSummary(summary)
	return summary, nil
}

// RefineSummary rewrites a summary according to user feedback. On any
// failure the current summary is returned unchanged so the caller never
// loses what it already has.
func RefineSummary(ctx context.Context, current *VideoSummary, feedback string) *VideoSummary {
	if current == nil || strings.TrimSpace(feedback) == "" {
		return current
	}

	prompt := fmt.Sprintf(refineUserPrompt,
		current.SummaryText,
		strings.Join(current.KeyPoints, ", "),
		strings.Join(current.Topics, ", "),
		feedback)
	refined, _, err := engine.CallLLMJSON[VideoSummary](ctx, refineSystemPrompt, prompt,
		llm.WithChatTemperature(0.5))
	if err != nil {
		slog.Warn("summary refinement failed, keeping original", slog.Any("err", err))
		return current
	}

	backfillSummary(refined)
	return refined
}

// backfillSummary fills any field the model left out so callers can render
// without nil checks.
func backfillSummary(s *VideoSummary) {
	if s.SummaryText == "" {
		s.SummaryText = "Summary not available."
	}
	if len(s.KeyPoints) == 0 {
		s.KeyPoints = []string{"Key points not available."}
	}
	if len(s.Topics) == 0 {
		s.Topics = []string{"Topics not available."}
	}
}
