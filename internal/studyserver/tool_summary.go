package studyserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/study"
	"tubestudy/internal/engine/video"
)

// VideoSummaryInput is the input for video_summary.
type VideoSummaryInput struct {
	URL      string `json:"url" jsonschema:"YouTube video URL"`
	Length   string `json:"length,omitempty" jsonschema:"Summary length: Concise, Moderate (default), Comprehensive"`
	Feedback string `json:"feedback,omitempty" jsonschema:"Optional feedback to refine the generated summary (e.g. 'focus more on the code examples')"`
}

// VideoSummaryOutput is the output for video_summary.
type VideoSummaryOutput struct {
	Video   video.Info         `json:"video"`
	Summary study.VideoSummary `json:"summary"`
}

func registerVideoSummary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_summary",
		Description: "Summarize a YouTube video's transcript: summary text, key points, and topics. Length options: Concise (~150 words), Moderate (~300), Comprehensive (~500). Pass feedback to refine an earlier summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VideoSummaryInput) (*mcp.CallToolResult, VideoSummaryOutput, error) {
		p, err := requireTranscript(ctx, input.URL)
		if err != nil {
			return nil, VideoSummaryOutput{}, err
		}

		cacheKey := engine.CacheKey("video_summary", input.URL, input.Length)

		var summary *study.VideoSummary
		if cached, ok := engine.CacheLoadJSON[study.VideoSummary](ctx, cacheKey); ok {
			summary = &cached
		} else {
			summary, err = study.GenerateSummary(ctx, p.Transcript, p.Info, study.SummaryLength(input.Length))
			if err != nil {
				return nil, VideoSummaryOutput{}, err
			}
			engine.CacheStoreJSON(ctx, cacheKey, *summary)
		}

		if input.Feedback != "" {
			summary = study.RefineSummary(ctx, summary, input.Feedback)
		}
		return nil, VideoSummaryOutput{Video: p.Info, Summary: *summary}, nil
	})
}
