package studyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine/study"
	"tubestudy/internal/engine/video"
)

// ProcessVideoInput is the input for process_video.
type ProcessVideoInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL (watch, embed, or youtu.be form)"`
}

// ProcessVideoOutput is the output for process_video. TranscriptError is set
// instead of a tool error when the transcript could not be retrieved, so the
// caller always receives the video record.
type ProcessVideoOutput struct {
	Video           video.Info           `json:"video"`
	Transcript      string               `json:"transcript,omitempty"`
	TranscriptError string               `json:"transcript_error,omitempty"`
	ErrorKind       string               `json:"error_kind,omitempty"`
	Overview        *study.VideoOverview `json:"overview,omitempty"`
}

func registerProcessVideo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_video",
		Description: "Process a YouTube video: extract the video ID, build a display record, and fetch a cleaned transcript with a content overview. On transcript failure, returns the video record plus a classified error message instead of failing.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessVideoInput) (*mcp.CallToolResult, ProcessVideoOutput, error) {
		if input.URL == "" {
			return nil, ProcessVideoOutput{}, errors.New("url is required")
		}

		p := loadProcessed(ctx, input.URL)
		out := ProcessVideoOutput{
			Video:           p.Info,
			Transcript:      p.Transcript,
			TranscriptError: p.TranscriptError,
			ErrorKind:       p.ErrorKind,
		}
		if p.ok() {
			out.Overview = study.GenerateOverview(ctx, p.Transcript, p.Info)
		}
		return nil, out, nil
	})
}
