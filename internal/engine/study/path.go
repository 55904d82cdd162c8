package study

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"tubestudy/internal/engine"
)

// defaultNextSteps seeds a path when the model leaves next_steps empty.
var defaultNextSteps = []string{
	"Complete introductory content in your area of interest",
	"Practice applying concepts with hands-on exercises",
	"Review and solidify your understanding of core concepts",
	"Work through a beginner-friendly project",
	"Join a community of practice to share your learning",
}

// GenerateRecommendations builds a personalized learning path for a profile.
func GenerateRecommendations(ctx context.Context, profile LearnerProfile) (*LearningPath, error) {
	style := profile.LearningStyle
	if style == "" {
		style = "Visual"
	}
	skill := profile.SkillLevel
	if skill == "" {
		skill = "Beginner"
	}

	system := fmt.Sprintf(pathSystemPrompt, style, profile.Progress, skill)
	prompt := fmt.Sprintf(pathUserPrompt,
		orNotSpecified(strings.Join(profile.Interests, ", ")),
		orNotSpecified(profile.Goals),
		style,
		profile.Progress,
		skill,
		orNone(strings.Join(profile.VideoHistory, ", ")),
		orNone(strings.Join(profile.CompletedMilestones, ", ")))

	path, _, err := engine.CallLLMJSON[LearningPath](ctx, system, prompt,
		llm.WithChatTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("generate learning path: %w", err)
	}

	backfillPath(path)
	return path, nil
}

// UpdateRecommendations adjusts an existing path to new progress and
// interests. On any failure the current path is returned unchanged.
func UpdateRecommendations(ctx context.Context, current *LearningPath, progressUpdate string, newInterests []string) *LearningPath {
	if current == nil {
		return nil
	}

	currentJSON, err := json.Marshal(current)
	if err != nil {
		slog.Warn("learning path update: marshal current path", slog.Any("err", err))
		return current
	}

	prompt := fmt.Sprintf(pathUpdateUserPrompt,
		string(currentJSON),
		orNone(progressUpdate),
		orNone(strings.Join(newInterests, ", ")))
	updated, _, err := engine.CallLLMJSON[LearningPath](ctx, pathUpdateSystemPrompt, prompt,
		llm.WithChatTemperature(0.5))
	if err != nil {
		slog.Warn("learning path update failed, keeping current", slog.Any("err", err))
		return current
	}

	backfillPath(updated)
	return updated
}

// backfillPath guarantees a renderable path: default next steps and non-nil
// slices throughout.
func backfillPath(p *LearningPath) {
	if len(p.NextSteps) == 0 {
		p.NextSteps = append([]string(nil), defaultNextSteps...)
	}
	if p.RecommendedVideos == nil {
		p.RecommendedVideos = []RecommendedVideo{}
	}
	if p.AdditionalResources == nil {
		p.AdditionalResources = []Resource{}
	}
	if p.Milestones == nil {
		p.Milestones = []Milestone{}
	}
	if p.SkillAssessments == nil {
		p.SkillAssessments = []SkillAssessment{}
	}
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
