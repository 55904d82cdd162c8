package video

// Kind classifies pipeline failures into the categories surfaced to users.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidURL
	KindNoCaptions
	KindNoEnglish
	KindFetch
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindNoCaptions:
		return "no_captions"
	case KindNoEnglish:
		return "no_english_transcript"
	case KindFetch:
		return "transcript_fetch_error"
	case KindUnexpected:
		return "unexpected_error"
	}
	return "none"
}

// Error is a classified pipeline failure: a machine-checkable kind plus the
// exact user-facing message. Callers branch on Kind, never on message text.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Transcript is the tagged result of a transcript fetch: either cleaned text
// or a classified error, never both.
type Transcript struct {
	Text string `json:"text,omitempty"`
	Err  *Error `json:"-"`
}

// OK reports whether the transcript was retrieved successfully.
func (t Transcript) OK() bool { return t.Err == nil }

// Message returns the display string: the transcript text on success, the
// classified error message on failure.
func (t Transcript) Message() string {
	if t.Err != nil {
		return t.Err.Message
	}
	return t.Text
}
