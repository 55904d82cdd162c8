package studyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine/study"
)

// QuizEvaluateInput is the input for quiz_evaluate.
type QuizEvaluateInput struct {
	Question study.QuizQuestion `json:"question" jsonschema:"The quiz question object returned by video_quiz"`
	Answer   string             `json:"answer" jsonschema:"The user's selected option (exact option string)"`
}

func registerQuizEvaluate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "quiz_evaluate",
		Description: "Check a user's answer to a video_quiz question. Returns whether it was correct plus the question's explanatory feedback. Pure check, no model call.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input QuizEvaluateInput) (*mcp.CallToolResult, study.AnswerEval, error) {
		if input.Question.Question == "" || input.Question.CorrectAnswer == "" {
			return nil, study.AnswerEval{}, errors.New("question with a correct_answer is required")
		}
		if input.Answer == "" {
			return nil, study.AnswerEval{}, errors.New("answer is required")
		}
		return nil, study.EvaluateAnswer(input.Question, input.Answer), nil
	})
}
