package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"tubestudy/internal/engine"
)

// chatHistoryWindow is how many prior turns are replayed for context.
const chatHistoryWindow = 5

// chatTranscriptCap limits the transcript excerpt embedded in the prompt.
const chatTranscriptCap = 2000

// noVideoGuidance is returned when no video has been processed yet.
const noVideoGuidance = "To answer your question about the video, I'll need to process a video first. Could you please go to the Video Processing section and input a YouTube URL?"

// Answer responds to a question about the processed video, grounded in its
// transcript, summary, and recent chat history.
func Answer(ctx context.Context, query string, c ChatContext) (string, error) {
	if strings.TrimSpace(c.Transcript) == "" {
		return noVideoGuidance, nil
	}

	reply, err := engine.CallLLM(ctx, chatSystemPrompt, buildChatPrompt(query, c),
		llm.WithChatTemperature(0.7), llm.WithChatMaxTokens(300))
	if err != nil {
		return "", fmt.Errorf("chat answer: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// buildChatPrompt assembles the grounding context, recent history, and the
// user's question into a single prompt.
func buildChatPrompt(query string, c ChatContext) string {
	summaryText := "Not available"
	keyPoints := []string{"Not available"}
	if c.Summary != nil {
		if c.Summary.SummaryText != "" {
			summaryText = c.Summary.SummaryText
		}
		if len(c.Summary.KeyPoints) > 0 {
			keyPoints = c.Summary.KeyPoints
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Video Title: %s\nVideo Channel: %s\n\n", c.Info.Title, c.Info.Channel)
	fmt.Fprintf(&sb, "Video Summary:\n%s\n\n", summaryText)
	fmt.Fprintf(&sb, "Key Points:\n%s\n\n", strings.Join(keyPoints, ", "))
	fmt.Fprintf(&sb, "Relevant part of transcript:\n%s\n", engine.Truncate(c.Transcript, chatTranscriptCap))

	if history := recentHistory(c.History, chatHistoryWindow); len(history) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, msg := range history {
			fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Content)
		}
	}

	fmt.Fprintf(&sb, "\nUser Question: %s", query)
	return sb.String()
}

// recentHistory returns the last n messages, oldest first.
func recentHistory(history []ChatMessage, n int) []ChatMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
