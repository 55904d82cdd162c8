package studyserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/study"
	"tubestudy/internal/engine/video"
)

// VideoFlashcardsInput is the input for video_flashcards.
type VideoFlashcardsInput struct {
	URL       string `json:"url" jsonschema:"YouTube video URL"`
	NumCards  int    `json:"num_cards,omitempty" jsonschema:"Number of flashcards to generate (default 10, max 25)"`
	FocusArea string `json:"focus_area,omitempty" jsonschema:"Focus: Key Concepts, Definitions, Examples, Mixed (default)"`
	Organize  bool   `json:"organize,omitempty" jsonschema:"Also bucket the cards into easy/medium/hard decks"`
}

// VideoFlashcardsOutput is the output for video_flashcards.
type VideoFlashcardsOutput struct {
	Video video.Info           `json:"video"`
	Cards []study.Flashcard    `json:"cards"`
	Deck  *study.FlashcardDeck `json:"deck,omitempty"`
}

func registerVideoFlashcards(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_flashcards",
		Description: "Generate spaced-repetition flashcards from a YouTube video's transcript. Optionally organized into easy/medium/hard decks by recall difficulty.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VideoFlashcardsInput) (*mcp.CallToolResult, VideoFlashcardsOutput, error) {
		p, err := requireTranscript(ctx, input.URL)
		if err != nil {
			return nil, VideoFlashcardsOutput{}, err
		}

		cacheKey := engine.CacheKey("video_flashcards", input.URL,
			strconv.Itoa(input.NumCards), input.FocusArea)
		cards, ok := engine.CacheLoadJSON[[]study.Flashcard](ctx, cacheKey)
		if !ok {
			cards, err = study.GenerateFlashcards(ctx, p.Transcript, p.Info, input.NumCards, input.FocusArea)
			if err != nil {
				return nil, VideoFlashcardsOutput{}, err
			}
			engine.CacheStoreJSON(ctx, cacheKey, cards)
		}

		out := VideoFlashcardsOutput{Video: p.Info, Cards: cards}
		if input.Organize {
			deck := study.OrganizeByDifficulty(cards)
			out.Deck = &deck
		}
		return nil, out, nil
	})
}
