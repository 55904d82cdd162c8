package studyserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/study"
	"tubestudy/internal/engine/video"
)

// VideoQuizInput is the input for video_quiz.
type VideoQuizInput struct {
	URL          string `json:"url" jsonschema:"YouTube video URL"`
	NumQuestions int    `json:"num_questions,omitempty" jsonschema:"Number of questions to generate (default 5, max 10)"`
	Difficulty   string `json:"difficulty,omitempty" jsonschema:"Question difficulty: Easy, Medium (default), Hard"`
}

// VideoQuizOutput is the output for video_quiz.
type VideoQuizOutput struct {
	Video     video.Info           `json:"video"`
	Questions []study.QuizQuestion `json:"questions"`
}

func registerVideoQuiz(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_quiz",
		Description: "Generate multiple-choice quiz questions from a YouTube video's transcript. Each question carries four options, the correct answer, and feedback for both outcomes. Check answers with quiz_evaluate.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VideoQuizInput) (*mcp.CallToolResult, VideoQuizOutput, error) {
		p, err := requireTranscript(ctx, input.URL)
		if err != nil {
			return nil, VideoQuizOutput{}, err
		}

		cacheKey := engine.CacheKey("video_quiz", input.URL,
			strconv.Itoa(input.NumQuestions), input.Difficulty)
		if cached, ok := engine.CacheLoadJSON[VideoQuizOutput](ctx, cacheKey); ok {
			return nil, cached, nil
		}

		questions, err := study.GenerateQuiz(ctx, p.Transcript, p.Info, input.NumQuestions, input.Difficulty)
		if err != nil {
			return nil, VideoQuizOutput{}, err
		}

		out := VideoQuizOutput{Video: p.Info, Questions: questions}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
