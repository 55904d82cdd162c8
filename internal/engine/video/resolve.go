package video

import "regexp"

// watchURLRE recognizes the public YouTube URL shapes: watch?v=, /embed/,
// /v/, youtu.be/ short links, and any query form carrying v=. The capture
// group is the 11-character video identifier.
var watchURLRE = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// idRE matches a bare, well-formed video identifier.
var idRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID parses an arbitrary YouTube URL into its video identifier.
// Pure function; no I/O.
func ExtractVideoID(rawURL string) (string, error) {
	if m := watchURLRE.FindStringSubmatch(rawURL); len(m) >= 2 {
		return m[1], nil
	}
	return "", &Error{
		Kind:    KindInvalidURL,
		Message: "Invalid YouTube URL. Please provide a valid YouTube video URL.",
	}
}

// ValidID reports whether id is a well-formed 11-character video identifier.
func ValidID(id string) bool { return idRE.MatchString(id) }
