package studyserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine/study"
	"tubestudy/internal/toolutil"
)

// LearningPathInput is the input for learning_path.
type LearningPathInput struct {
	Interests           []string `json:"interests,omitempty" jsonschema:"Learning interests (e.g. Go, distributed systems)"`
	Goals               string   `json:"goals,omitempty" jsonschema:"What the user wants to achieve"`
	LearningStyle       string   `json:"learning_style,omitempty" jsonschema:"Preferred style: Visual (default), Reading, Hands-on, Auditory"`
	Progress            int      `json:"progress,omitempty" jsonschema:"Current overall progress, 0-100"`
	SkillLevel          string   `json:"skill_level,omitempty" jsonschema:"Beginner (default), Intermediate, or Advanced"`
	VideoHistory        []string `json:"video_history,omitempty" jsonschema:"Titles of videos already watched"`
	CompletedMilestones []string `json:"completed_milestones,omitempty" jsonschema:"Names of milestones already completed"`
	Email               string   `json:"email,omitempty" jsonschema:"If set and a user store is configured, persist the profile and path under this email"`
}

func registerLearningPath(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "learning_path",
		Description: "Build a personalized learning path: next steps, recommended videos, additional resources, milestones, and skill assessments. Optionally persists the result under an email when a user store is configured.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LearningPathInput) (*mcp.CallToolResult, *study.LearningPath, error) {
		profile := study.LearnerProfile{
			Interests:           input.Interests,
			Goals:               input.Goals,
			LearningStyle:       input.LearningStyle,
			Progress:            input.Progress,
			SkillLevel:          input.SkillLevel,
			VideoHistory:        input.VideoHistory,
			CompletedMilestones: input.CompletedMilestones,
		}

		path, err := study.GenerateRecommendations(ctx, profile)
		if err != nil {
			return nil, nil, err
		}

		if input.Email != "" {
			if db := study.GetUserDB(); db != nil {
				email, err := toolutil.NormEmail(input.Email)
				if err != nil {
					return nil, nil, err
				}
				if err := db.SaveUserData(ctx, email, profile, path); err != nil {
					slog.Warn("learning_path: persist failed", slog.Any("err", err))
				}
			}
		}
		return nil, path, nil
	})
}

// LearningPathUpdateInput is the input for learning_path_update.
type LearningPathUpdateInput struct {
	Email          string              `json:"email,omitempty" jsonschema:"Load the current path from the user store under this email"`
	Path           *study.LearningPath `json:"path,omitempty" jsonschema:"Current path to update, if not loading by email"`
	ProgressUpdate string              `json:"progress_update,omitempty" jsonschema:"What the user accomplished since the path was generated"`
	NewInterests   []string            `json:"new_interests,omitempty" jsonschema:"Interests to add"`
}

func registerLearningPathUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "learning_path_update",
		Description: "Update an existing learning path with new progress and interests. Provide the path inline or an email to load it from the user store. Returns the current path unchanged if the update cannot be generated.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LearningPathUpdateInput) (*mcp.CallToolResult, *study.LearningPath, error) {
		current := input.Path
		var email string
		if current == nil {
			if input.Email == "" {
				return nil, nil, errors.New("either path or email is required")
			}
			db := study.GetUserDB()
			if db == nil {
				return nil, nil, errors.New("no user store configured; provide the path inline")
			}
			var err error
			email, err = toolutil.NormEmail(input.Email)
			if err != nil {
				return nil, nil, err
			}
			_, current, err = db.LoadUserData(ctx, email)
			if err != nil {
				return nil, nil, err
			}
			if current == nil {
				return nil, nil, errors.New("no learning path stored for this email; run learning_path first")
			}
		}

		updated := study.UpdateRecommendations(ctx, current, input.ProgressUpdate, input.NewInterests)

		if email != "" {
			if db := study.GetUserDB(); db != nil {
				profile, _, err := db.LoadUserData(ctx, email)
				if err == nil {
					if len(input.NewInterests) > 0 {
						profile.Interests = append(profile.Interests, input.NewInterests...)
					}
					if err := db.SaveUserData(ctx, email, *profile, updated); err != nil {
						slog.Warn("learning_path_update: persist failed", slog.Any("err", err))
					}
				}
			}
		}
		return nil, updated, nil
	})
}
