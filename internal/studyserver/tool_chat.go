package studyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/study"
)

// VideoChatInput is the input for video_chat.
type VideoChatInput struct {
	URL      string              `json:"url" jsonschema:"YouTube video URL of the processed video"`
	Question string              `json:"question" jsonschema:"The user's question about the video"`
	History  []study.ChatMessage `json:"history,omitempty" jsonschema:"Prior chat turns ({role, content}); only the most recent five are used"`
}

// VideoChatOutput is the output for video_chat.
type VideoChatOutput struct {
	Answer string `json:"answer"`
}

func registerVideoChat(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_chat",
		Description: "Answer a question about a processed YouTube video, grounded in its transcript, summary, and recent chat history.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VideoChatInput) (*mcp.CallToolResult, VideoChatOutput, error) {
		if input.Question == "" {
			return nil, VideoChatOutput{}, errors.New("question is required")
		}

		chatCtx := study.ChatContext{History: input.History}
		if input.URL != "" {
			p := loadProcessed(ctx, input.URL)
			chatCtx.Transcript = p.Transcript
			chatCtx.Info = p.Info

			summaryKey := engine.CacheKey("video_summary", input.URL, "")
			if summary, ok := engine.CacheLoadJSON[study.VideoSummary](ctx, summaryKey); ok {
				chatCtx.Summary = &summary
			}
		}

		answer, err := study.Answer(ctx, input.Question, chatCtx)
		if err != nil {
			return nil, VideoChatOutput{}, err
		}
		return nil, VideoChatOutput{Answer: answer}, nil
	})
}
