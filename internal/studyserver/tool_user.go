package studyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine/study"
	"tubestudy/internal/toolutil"
)

// UserDataSaveInput is the input for user_data_save.
type UserDataSaveInput struct {
	Email   string               `json:"email" jsonschema:"Email address identifying the learner"`
	Profile study.LearnerProfile `json:"profile" jsonschema:"Learner profile to store"`
	Path    *study.LearningPath  `json:"path,omitempty" jsonschema:"Current learning path, if any"`
}

// UserDataSaveOutput is the output for user_data_save.
type UserDataSaveOutput struct {
	Message string `json:"message"`
}

// UserDataLoadInput is the input for user_data_load.
type UserDataLoadInput struct {
	Email string `json:"email" jsonschema:"Email address the learner data was saved under"`
}

// UserDataLoadOutput is the output for user_data_load.
type UserDataLoadOutput struct {
	Profile study.LearnerProfile `json:"profile"`
	Path    *study.LearningPath  `json:"path,omitempty"`
}

// errNoUserDB is returned when Postgres persistence is not configured.
var errNoUserDB = errors.New("no user store configured (set DATABASE_URL)")

func registerUserDataSave(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "user_data_save",
		Description: "Persist a learner's profile and learning path in the user store (Postgres), keyed by email. Requires DATABASE_URL to be configured.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input UserDataSaveInput) (*mcp.CallToolResult, *UserDataSaveOutput, error) {
		db := study.GetUserDB()
		if db == nil {
			return nil, nil, errNoUserDB
		}
		email, err := toolutil.NormEmail(input.Email)
		if err != nil {
			return nil, nil, err
		}
		if err := db.SaveUserData(ctx, email, input.Profile, input.Path); err != nil {
			return nil, nil, err
		}
		return nil, &UserDataSaveOutput{Message: "Saved learner data for " + email}, nil
	})
}

func registerUserDataLoad(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "user_data_load",
		Description: "Load a learner's stored profile and learning path from the user store (Postgres) by email.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input UserDataLoadInput) (*mcp.CallToolResult, *UserDataLoadOutput, error) {
		db := study.GetUserDB()
		if db == nil {
			return nil, nil, errNoUserDB
		}
		email, err := toolutil.NormEmail(input.Email)
		if err != nil {
			return nil, nil, err
		}
		profile, path, err := db.LoadUserData(ctx, email)
		if err != nil {
			return nil, nil, err
		}
		return nil, &UserDataLoadOutput{Profile: *profile, Path: path}, nil
	})
}
