package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestionJSON = `{
	"question": "What does a goroutine share with its creator?",
	"options": ["Address space", "Stack", "Program counter", "Registers"],
	"correct_answer": "Address space",
	"correct_feedback": "Right, goroutines share one address space.",
	"incorrect_feedback": "Goroutines share the address space of the process."
}`

func TestDecodeQuestionsBareArray(t *testing.T) {
	questions, err := decodeQuestions(`[` + sampleQuestionJSON + `]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Address space", questions[0].CorrectAnswer)
	assert.Len(t, questions[0].Options, 4)
}

func TestDecodeQuestionsWrappedObject(t *testing.T) {
	questions, err := decodeQuestions(`{"questions": [` + sampleQuestionJSON + `]}`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What does a goroutine share with its creator?", questions[0].Question)
}

func TestDecodeQuestionsDropsIncomplete(t *testing.T) {
	questions, err := decodeQuestions(`[` + sampleQuestionJSON + `,
		{"question": "Incomplete one?", "options": [], "correct_answer": ""}]`)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestDecodeQuestionsInvalid(t *testing.T) {
	_, err := decodeQuestions(`not json at all`)
	assert.Error(t, err)
}

func TestEvaluateAnswer(t *testing.T) {
	q := QuizQuestion{
		CorrectAnswer:     "B",
		CorrectFeedback:   "yes",
		IncorrectFeedback: "no",
	}
	eval := EvaluateAnswer(q, "B")
	assert.True(t, eval.Correct)
	assert.Equal(t, "yes", eval.Feedback)

	eval = EvaluateAnswer(q, "A")
	assert.False(t, eval.Correct)
	assert.Equal(t, "no", eval.Feedback)
}

func TestNormalizeDifficulty(t *testing.T) {
	assert.Equal(t, "Easy", normalizeDifficulty(" easy "))
	assert.Equal(t, "Hard", normalizeDifficulty("HARD"))
	assert.Equal(t, "Medium", normalizeDifficulty(""))
	assert.Equal(t, "Medium", normalizeDifficulty("impossible"))
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 5, clampCount(0, 5, 10))
	assert.Equal(t, 5, clampCount(-3, 5, 10))
	assert.Equal(t, 7, clampCount(7, 5, 10))
	assert.Equal(t, 10, clampCount(50, 5, 10))
}
