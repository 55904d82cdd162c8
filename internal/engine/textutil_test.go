package engine

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text fast path", "just text", "just text"},
		{"tags stripped", "the <i>important</i> part", "the important part"},
		{"entities unescaped", "fish &amp; chips", "fish & chips"},
		{"numeric entity", "it&#39;s fine", "it's fine"},
		{"nested tags", "<b>bold <i>and italic</i></b>", "bold and italic"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.in); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("ab", 10); got != "ab" {
		t.Errorf("Truncate should pass short strings through, got %q", got)
	}
}
