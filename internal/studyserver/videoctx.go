package studyserver

import (
	"context"
	"errors"

	"tubestudy/internal/engine"
	"tubestudy/internal/engine/video"
)

// processedVideo is the cached outcome of processing one URL. Failures cache
// too, so a broken video does not hammer YouTube on every study tool call.
type processedVideo struct {
	Info            video.Info `json:"info"`
	Transcript      string     `json:"transcript,omitempty"`
	TranscriptError string     `json:"transcript_error,omitempty"`
	ErrorKind       string     `json:"error_kind,omitempty"`
}

func (p processedVideo) ok() bool { return p.TranscriptError == "" }

// loadProcessed resolves a URL to its processed video, via cache or a fresh
// pipeline run.
func loadProcessed(ctx context.Context, url string) processedVideo {
	key := engine.CacheKey("process_video", url)
	if cached, ok := engine.CacheLoadJSON[processedVideo](ctx, key); ok {
		return cached
	}

	info, tr := video.Process(ctx, url)
	p := processedVideo{Info: info}
	if tr.OK() {
		p.Transcript = tr.Text
	} else {
		p.TranscriptError = tr.Err.Message
		p.ErrorKind = tr.Err.Kind.String()
	}
	engine.CacheStoreJSON(ctx, key, p)
	return p
}

// requireTranscript resolves a URL and fails with the classified
// user-facing message when no transcript is available.
func requireTranscript(ctx context.Context, url string) (processedVideo, error) {
	if url == "" {
		return processedVideo{}, errors.New("url is required")
	}
	p := loadProcessed(ctx, url)
	if !p.ok() {
		return processedVideo{}, errors.New(p.TranscriptError)
	}
	return p, nil
}
