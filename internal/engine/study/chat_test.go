package study

import (
	"context"
	"strings"
	"testing"

	"tubestudy/internal/engine/video"
)

func TestAnswerNoTranscript(t *testing.T) {
	reply, err := Answer(context.Background(), "what is this about?", ChatContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != noVideoGuidance {
		t.Errorf("reply = %q", reply)
	}
}

func TestBuildChatPrompt(t *testing.T) {
	c := ChatContext{
		Transcript: "the transcript body",
		Info:       video.Info{Title: "Intro to Go", Channel: "Gopher Academy"},
		Summary: &VideoSummary{
			SummaryText: "a summary",
			KeyPoints:   []string{"p1", "p2"},
		},
		History: []ChatMessage{
			{Role: "user", Content: "first question"},
			{Role: "assistant", Content: "first answer"},
		},
	}
	prompt := buildChatPrompt("second question", c)

	for _, want := range []string{
		"Video Title: Intro to Go",
		"Video Channel: Gopher Academy",
		"a summary",
		"p1, p2",
		"the transcript body",
		"user: first question",
		"assistant: first answer",
		"User Question: second question",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildChatPromptNoSummary(t *testing.T) {
	prompt := buildChatPrompt("q", ChatContext{Transcript: "text", Info: video.Info{Title: "T"}})
	if !strings.Contains(prompt, "Not available") {
		t.Error("missing summary placeholder")
	}
}

func TestRecentHistory(t *testing.T) {
	var history []ChatMessage
	for i := 0; i < 8; i++ {
		history = append(history, ChatMessage{Role: "user", Content: string(rune('a' + i))})
	}
	got := recentHistory(history, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Content != "d" || got[4].Content != "h" {
		t.Errorf("window = %v", got)
	}
	if short := recentHistory(history[:2], 5); len(short) != 2 {
		t.Errorf("short history should pass through, got %d", len(short))
	}
}
