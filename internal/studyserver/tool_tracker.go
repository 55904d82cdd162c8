package studyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine/study"
)

func registerStudyTrackerAdd(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "study_tracker_add",
		Description: "Save a video to the local study tracker (SQLite). Status options: saved (default), watching, completed. Returns the assigned ID for future updates.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input study.TrackerAddInput) (*mcp.CallToolResult, *study.TrackerResult, error) {
		if input.VideoID == "" || input.Title == "" {
			return nil, nil, errors.New("video_id and title are required")
		}
		result, err := study.AddTrackedVideo(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerStudyTrackerList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "study_tracker_list",
		Description: "List videos in the local study tracker. Optionally filter by status: saved, watching, completed. Returns videos sorted by most recently updated.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input study.TrackerListInput) (*mcp.CallToolResult, *study.TrackerListResult, error) {
		result, err := study.ListTrackedVideos(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerStudyTrackerUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "study_tracker_update",
		Description: "Update status or notes for a tracked video by ID. Status options: saved, watching, completed. Get IDs from study_tracker_list.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input study.TrackerUpdateInput) (*mcp.CallToolResult, *study.TrackerResult, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		result, err := study.UpdateTrackedVideo(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
