// Package study turns processed video transcripts into learning material:
// overviews, summaries, quizzes, flashcards, chat answers, and personalized
// learning paths.
package study

import "tubestudy/internal/engine/video"

// VideoOverview is a quick orientation card for a video.
type VideoOverview struct {
	Description    string `json:"description"`
	PrimaryTopic   string `json:"primary_topic"`
	TargetAudience string `json:"target_audience"`
	ContentType    string `json:"content_type"`
}

// SummaryLength selects how detailed a generated summary is.
type SummaryLength string

const (
	LengthConcise       SummaryLength = "Concise"
	LengthModerate      SummaryLength = "Moderate"
	LengthComprehensive SummaryLength = "Comprehensive"
)

// VideoSummary is the structured summary of a transcript.
type VideoSummary struct {
	SummaryText string   `json:"summary_text"`
	KeyPoints   []string `json:"key_points"`
	Topics      []string `json:"topics"`
}

// QuizQuestion is a single multiple-choice question with feedback for both
// outcomes. CorrectAnswer is the exact string from Options.
type QuizQuestion struct {
	Question          string   `json:"question"`
	Options           []string `json:"options"`
	CorrectAnswer     string   `json:"correct_answer"`
	CorrectFeedback   string   `json:"correct_feedback"`
	IncorrectFeedback string   `json:"incorrect_feedback"`
}

// AnswerEval is the result of checking a user's answer.
type AnswerEval struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// Flashcard is a front/back recall card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardDeck groups flashcards by estimated recall difficulty.
type FlashcardDeck struct {
	Easy   []Flashcard `json:"easy"`
	Medium []Flashcard `json:"medium"`
	Hard   []Flashcard `json:"hard"`
}

// RecommendedVideo is one video suggestion in a learning path.
type RecommendedVideo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	URL             string `json:"url"`
	Reason          string `json:"reason"`
	Category        string `json:"category"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Resource is a non-video learning resource suggestion.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"` // Book, Article, Course, Tool, Website
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Milestone is a checkpoint in a learning path.
type Milestone struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Progress       int    `json:"progress"` // 0-100
	Objective      string `json:"objective"`
	EstimatedHours int    `json:"estimated_completion_hours"`
}

// SkillAssessment tracks one skill's current and target proficiency.
type SkillAssessment struct {
	Skill               string `json:"skill"`
	CurrentLevel        string `json:"current_level"`
	NextGoal            string `json:"next_goal"`
	RecommendedPractice string `json:"recommended_practice"`
}

// LearningPath is a full personalized study plan.
type LearningPath struct {
	NextSteps           []string           `json:"next_steps"`
	RecommendedVideos   []RecommendedVideo `json:"recommended_videos"`
	AdditionalResources []Resource         `json:"additional_resources"`
	Milestones          []Milestone        `json:"milestones"`
	SkillAssessments    []SkillAssessment  `json:"skill_assessments"`
}

// LearnerProfile describes the user the learning path is built for.
type LearnerProfile struct {
	Interests           []string `json:"interests,omitempty"`
	Goals               string   `json:"goals,omitempty"`
	LearningStyle       string   `json:"learning_style,omitempty"`
	Progress            int      `json:"progress,omitempty"` // 0-100
	SkillLevel          string   `json:"skill_level,omitempty"`
	VideoHistory        []string `json:"video_history,omitempty"` // watched video titles
	CompletedMilestones []string `json:"completed_milestones,omitempty"`
}

// ChatMessage is one turn of the study chat.
type ChatMessage struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// ChatContext carries everything the chat assistant may ground an answer on.
type ChatContext struct {
	Transcript string
	Info       video.Info
	Summary    *VideoSummary
	History    []ChatMessage
}
