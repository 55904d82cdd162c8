package video

import "strings"

// Info is a display-only video record. It is synthesized locally from the
// identifier — no metadata API is called — so it is always available, even
// when the transcript fetch later fails.
type Info struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Duration  int    `json:"duration"` // minutes
	Views     int    `json:"views"`
	Likes     int    `json:"likes"`
	Published string `json:"published_date"`
	URL       string `json:"url"`
}

var idTitleReplacer = strings.NewReplacer("_", " ", "-", " ")

// WatchURL returns the canonical watch URL for a video identifier.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// BuildInfo synthesizes a display record for a video identifier. Total
// function: a malformed identifier yields the degraded record rather than
// an error, so metadata never fails the pipeline.
func BuildInfo(id string) Info {
	if !ValidID(id) {
		return Info{
			ID:        id,
			Title:     "Video " + id,
			Channel:   "Unknown Channel",
			Published: "Unknown",
			URL:       WatchURL(id),
		}
	}
	return Info{
		ID:        id,
		Title:     "YouTube Video: " + idTitleReplacer.Replace(id),
		Channel:   "YouTube Channel",
		Duration:  10,
		Views:     1000,
		Likes:     100,
		Published: "2023-01-01",
		URL:       WatchURL(id),
	}
}
