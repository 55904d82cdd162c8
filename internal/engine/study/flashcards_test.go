package study

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFlashcardsBareArray(t *testing.T) {
	cards, err := decodeFlashcards(`[{"front": "What is a channel?", "back": "A typed conduit for goroutine communication."}]`)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "What is a channel?", cards[0].Front)
}

func TestDecodeFlashcardsWrappedObject(t *testing.T) {
	cards, err := decodeFlashcards(`{"flashcards": [{"front": "f", "back": "b"}, {"front": "", "back": "orphan"}]}`)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestOrganizeByDifficulty(t *testing.T) {
	cards := []Flashcard{
		{Front: "easy", Back: "short answer"},
		{Front: "medium", Back: strings.Repeat("m", 150)},
		{Front: "hard", Back: strings.Repeat("h", 300)},
	}
	deck := OrganizeByDifficulty(cards)
	require.Len(t, deck.Easy, 1)
	require.Len(t, deck.Medium, 1)
	require.Len(t, deck.Hard, 1)
	assert.Equal(t, "easy", deck.Easy[0].Front)
	assert.Equal(t, "medium", deck.Medium[0].Front)
	assert.Equal(t, "hard", deck.Hard[0].Front)
}
