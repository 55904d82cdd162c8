package study

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/video"
)

// defaultTranscriptCap limits how much transcript the quiz and flashcard
// prompts carry when MaxTranscriptChars is unset.
const defaultTranscriptCap = 8000

func transcriptCap() int {
	if n := engine.Cfg.MaxTranscriptChars; n > 0 {
		return n
	}
	return defaultTranscriptCap
}

var validDifficulties = map[string]string{
	"easy":   "Easy",
	"medium": "Medium",
	"hard":   "Hard",
}

// normalizeDifficulty maps arbitrary input to a supported difficulty label,
// defaulting to Medium.
func normalizeDifficulty(d string) string {
	if norm, ok := validDifficulties[strings.ToLower(strings.TrimSpace(d))]; ok {
		return norm
	}
	return "Medium"
}

// clampCount bounds a requested item count to [1, max], substituting def
// for zero or negative input.
func clampCount(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// GenerateQuiz creates multiple-choice questions from a transcript.
func GenerateQuiz(ctx context.Context, transcript string, info video.Info, numQuestions int, difficulty string) ([]QuizQuestion, error) {
	if len(strings.TrimSpace(transcript)) < minStudyTranscript {
		return nil, fmt.Errorf("transcript too short to generate a quiz")
	}

	numQuestions = clampCount(numQuestions, 5, 10)
	difficulty = normalizeDifficulty(difficulty)
	lower := strings.ToLower(difficulty)

	system := fmt.Sprintf(quizSystemPrompt, lower)
	prompt := fmt.Sprintf(quizUserPrompt, info.Title, info.Channel,
		engine.Truncate(transcript, transcriptCap()), numQuestions, lower)
	raw, err := engine.CallLLM(ctx, system, prompt+engine.JSONFormatInstruction,
		llm.WithChatTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	questions, err := decodeQuestions(raw)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generate quiz: model returned no usable questions")
	}
	return questions, nil
}

// decodeQuestions accepts either a bare JSON array or an object wrapping it
// under "questions", and drops entries missing any required field.
func decodeQuestions(raw string) ([]QuizQuestion, error) {
	raw = strings.TrimSpace(raw)

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		var wrapper struct {
			Questions []QuizQuestion `json:"questions"`
		}
		if werr := json.Unmarshal([]byte(raw), &wrapper); werr != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		questions = wrapper.Questions
	}

	valid := questions[:0]
	for _, q := range questions {
		if q.Question == "" || len(q.Options) == 0 || q.CorrectAnswer == "" {
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

// EvaluateAnswer checks a user's answer against the question's correct
// option. Pure function; the feedback comes from the generated question.
func EvaluateAnswer(q QuizQuestion, userAnswer string) AnswerEval {
	if userAnswer == q.CorrectAnswer {
		return AnswerEval{Correct: true, Feedback: q.CorrectFeedback}
	}
	return AnswerEval{Correct: false, Feedback: q.IncorrectFeedback}
}
