package video

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"v url", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"extra query params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", false},
		{"short link with params", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", false},
		{"underscore and dash id", "https://www.youtube.com/watch?v=a_b-C1d2E3f", "a_b-C1d2E3f", false},
		{"not a url", "not a url", "", true},
		{"empty", "", "", true},
		{"bare id rejected", "dQw4w9WgXcQ", "", true},
		{"id too short", "https://youtu.be/short", "", true},
		{"unrelated site", "https://vimeo.com/123456789", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractVideoID(%q) = %q, want error", tt.url, got)
				}
				if err.Error() != "Invalid YouTube URL. Please provide a valid YouTube video URL." {
					t.Errorf("error message = %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) error: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"dQw4w9WgXcQ", true},
		{"a_b-C1d2E3f", true},
		{"short", false},
		{"waytoolongvideoid", false},
		{"has space 12", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidID(tt.id); got != tt.want {
			t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
