package video

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"tubestudy/internal/engine"
)

// Transcript fetching.
// Primary:  ANDROID Innertube /player → captionTracks → timedtext XML
// Fallback: watch page scrape via browser-fingerprint session → ytInitialPlayerResponse

// Typed sentinel failures, classified before any message sniffing.
var (
	errNoCaptionTracks = errors.New("no caption tracks for this video")
	errNoEnglishTrack  = errors.New("no caption track in the requested language")
	errEmptyTranscript = errors.New("empty transcript")
)

// FetchTranscript fetches and cleans the caption text for a video ID.
// Strategies run sequentially, first success wins; a primary failure is
// logged and falls through rather than aborting.
func FetchTranscript(ctx context.Context, id string) (string, error) {
	engine.IncrTranscriptRequests()
	langs := engine.Cfg.TranscriptLangs
	if len(langs) == 0 {
		langs = []string{"en"}
	}

	text, err := fetchViaPlayer(ctx, id, langs)
	if err == nil {
		if text = CleanTranscript(text); text != "" {
			return text, nil
		}
		err = errEmptyTranscript
	}
	slog.Warn("transcript: captions API failed, trying watch page",
		slog.String("id", id), slog.Any("err", err))
	engine.IncrTranscriptFallbacks()

	text, err = fetchViaWatchPage(ctx, id, langs)
	if err != nil {
		engine.IncrTranscriptFailures()
		return "", err
	}
	if text = CleanTranscript(text); text == "" {
		engine.IncrTranscriptFailures()
		return "", errEmptyTranscript
	}
	return text, nil
}

// fetchViaPlayer queries the ANDROID Innertube /player endpoint for caption
// tracks and downloads the best one.
func fetchViaPlayer(ctx context.Context, id string, langs []string) (string, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: id,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return "", err
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytPlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", ytAndroidUA)
		req.Header.Set("X-Youtube-Client-Name", "3")
		req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("captions API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("captions API: HTTP Error %d", resp.StatusCode)
	}

	var player playerResp
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return "", fmt.Errorf("decode player: %w", err)
	}
	track, err := pickTrack(&player, langs)
	if err != nil {
		return "", err
	}
	return fetchTimedText(ctx, track.BaseURL)
}

// ytInitialPlayerResponseMarker marks the start of the player response JSON
// embedded in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// fetchViaWatchPage loads the watch page as a browser session (spoofed
// user-agent and locale headers), extracts ytInitialPlayerResponse, and
// downloads the preferred caption track.
func fetchViaWatchPage(ctx context.Context, id string, langs []string) (string, error) {
	body, err := fetchWatchPage(ctx, WatchURL(id))
	if err != nil {
		return "", err
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return "", errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return "", errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var player playerResp
	if err := json.Unmarshal(jsonData, &player); err != nil {
		return "", fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	track, err := pickTrack(&player, langs)
	if err != nil {
		return "", err
	}
	return fetchTimedText(ctx, track.BaseURL)
}

// fetchWatchPage fetches watch page HTML, through the browser-fingerprint
// client when one is configured, else plain HTTP with spoofed headers.
func fetchWatchPage(ctx context.Context, watchURL string) ([]byte, error) {
	if bc := engine.Cfg.BrowserClient; bc != nil {
		headers := engine.ChromeHeaders()
		headers["accept-language"] = "en-US,en;q=0.9"
		body, _, status, err := bc.Do(http.MethodGet, watchURL, headers, nil)
		if err != nil {
			return nil, fmt.Errorf("watch page: %w", err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("watch page: HTTP Error %d", status)
		}
		return body, nil
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.RandomUserAgent())
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP Error %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
}

// pickTrack selects the best caption track for the language preferences:
// manual track in a preferred language, then auto-generated (asr) in a
// preferred language, then any English track.
func pickTrack(player *playerResp, langs []string) (captionTrack, error) {
	if player.Captions == nil {
		if ps := player.PlayabilityStatus; ps != nil && ps.Reason != "" {
			return captionTrack{}, fmt.Errorf("captions unavailable: %s", ps.Reason)
		}
		return captionTrack{}, errNoCaptionTracks
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return captionTrack{}, errNoCaptionTracks
	}

	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, nil
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, nil
			}
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, nil
		}
	}
	return captionTrack{}, errNoEnglishTrack
}

// fetchTimedText fetches a timedtext caption URL and joins segment texts
// with single spaces, in timeline order.
func fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}
	return joinSegments(tt.Lines), nil
}

// joinSegments concatenates cleaned caption lines with single-space separators.
func joinSegments(lines []timedTextLine) string {
	var sb strings.Builder
	for _, line := range lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String()
}
