package video

import "testing"

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"srt block",
			"1\n0:00:01,000 --> 0:00:04,000\nhello world\n\n2\n0:00:04,500 --> 0:00:07,000\nsecond line",
			"hello world second line",
		},
		{
			"whitespace collapse",
			"  multiple   spaces\n\nand\tnewlines  ",
			"multiple spaces and newlines",
		},
		{
			"sequence numbers only on own lines",
			"42\ntrack 42 keeps inline numbers like 7",
			"track 42 keeps inline numbers like 7",
		},
		{"plain text untouched", "just a sentence", "just a sentence"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanTranscript(tt.in)
			if got != tt.want {
				t.Errorf("CleanTranscript() = %q, want %q", got, tt.want)
			}
			// Cleaning clean text must be a no-op.
			if again := CleanTranscript(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}
