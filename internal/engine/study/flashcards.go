package study

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anatolykoptev/go-kit/llm"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/video"
)

var validFocusAreas = map[string]string{
	"key concepts": "Key Concepts",
	"definitions":  "Definitions",
	"examples":     "Examples",
	"mixed":        "Mixed",
}

// GenerateFlashcards creates recall cards from a transcript, focused on the
// requested area (Key Concepts, Definitions, Examples, or Mixed).
func GenerateFlashcards(ctx context.Context, transcript string, info video.Info, numCards int, focusArea string) ([]Flashcard, error) {
	if len(strings.TrimSpace(transcript)) < minStudyTranscript {
		return nil, fmt.Errorf("transcript too short to generate flashcards")
	}

	numCards = clampCount(numCards, 10, 25)
	focus, ok := validFocusAreas[strings.ToLower(strings.TrimSpace(focusArea))]
	if !ok {
		focus = "Mixed"
	}
	lower := strings.ToLower(focus)

	system := fmt.Sprintf(flashcardSystemPrompt, lower)
	prompt := fmt.Sprintf(flashcardUserPrompt, info.Title, info.Channel,
		engine.Truncate(transcript, transcriptCap()), numCards, lower)
	raw, err := engine.CallLLM(ctx, system, prompt+engine.JSONFormatInstruction,
		llm.WithChatTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	cards, err := decodeFlashcards(raw)
	if err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}
	if len(cards) > numCards {
		cards = cards[:numCards]
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("generate flashcards: model returned no usable cards")
	}
	return cards, nil
}

// decodeFlashcards accepts either a bare JSON array or an object wrapping it
// under "flashcards", and drops cards missing either side.
func decodeFlashcards(raw string) ([]Flashcard, error) {
	raw = strings.TrimSpace(raw)

	var cards []Flashcard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		var wrapper struct {
			Flashcards []Flashcard `json:"flashcards"`
		}
		if werr := json.Unmarshal([]byte(raw), &wrapper); werr != nil {
			return nil, fmt.Errorf("decode flashcards: %w", err)
		}
		cards = wrapper.Flashcards
	}

	valid := cards[:0]
	for _, c := range cards {
		if c.Front == "" || c.Back == "" {
			continue
		}
		valid = append(valid, c)
	}
	return valid, nil
}

// Difficulty thresholds on answer length, in runes. Longer answers take
// longer to recall completely.
const (
	easyBackLimit   = 80
	mediumBackLimit = 200
)

// OrganizeByDifficulty buckets cards by how demanding the answer side is to
// recall, approximated by its length.
func OrganizeByDifficulty(cards []Flashcard) FlashcardDeck {
	var deck FlashcardDeck
	for _, c := range cards {
		switch n := utf8.RuneCountInString(c.Back); {
		case n <= easyBackLimit:
			deck.Easy = append(deck.Easy, c)
		case n <= mediumBackLimit:
			deck.Medium = append(deck.Medium, c)
		default:
			deck.Hard = append(deck.Hard, c)
		}
	}
	return deck
}
