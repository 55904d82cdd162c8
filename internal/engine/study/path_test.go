package study

import (
	"context"
	"testing"
)

func TestBackfillPath(t *testing.T) {
	p := &LearningPath{}
	backfillPath(p)
	if len(p.NextSteps) != len(defaultNextSteps) {
		t.Errorf("NextSteps = %v", p.NextSteps)
	}
	if p.RecommendedVideos == nil || p.AdditionalResources == nil ||
		p.Milestones == nil || p.SkillAssessments == nil {
		t.Error("all slices must be non-nil after backfill")
	}

	full := &LearningPath{NextSteps: []string{"keep me"}}
	backfillPath(full)
	if len(full.NextSteps) != 1 || full.NextSteps[0] != "keep me" {
		t.Error("backfill must not overwrite existing next steps")
	}
}

func TestUpdateRecommendationsNilPath(t *testing.T) {
	if got := UpdateRecommendations(context.Background(), nil, "progress", nil); got != nil {
		t.Error("nil current path should stay nil")
	}
}

func TestOrHelpers(t *testing.T) {
	if orNotSpecified("") != "Not specified" || orNotSpecified("x") != "x" {
		t.Error("orNotSpecified")
	}
	if orNone(" ") != "None" || orNone("y") != "y" {
		t.Error("orNone")
	}
}
