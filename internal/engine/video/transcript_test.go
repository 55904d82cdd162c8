package video

import (
	"encoding/json"
	"testing"
)

func track(lang, kind string) captionTrack {
	return captionTrack{BaseURL: "https://captions/" + lang + "/" + kind, LanguageCode: lang, Kind: kind}
}

func playerWith(tracks ...captionTrack) *playerResp {
	var p playerResp
	raw, _ := json.Marshal(map[string]any{
		"captions": map[string]any{
			"playerCaptionsTracklistRenderer": map[string]any{
				"captionTracks": tracks,
			},
		},
	})
	_ = json.Unmarshal(raw, &p)
	return &p
}

func TestPickTrack(t *testing.T) {
	tests := []struct {
		name    string
		player  *playerResp
		langs   []string
		want    string // expected language+kind, "" for error
		wantErr error
	}{
		{
			"manual beats asr",
			playerWith(track("en", "asr"), track("en", "")),
			[]string{"en"},
			"en+", nil,
		},
		{
			"asr when no manual",
			playerWith(track("en", "asr"), track("fr", "")),
			[]string{"en"},
			"en+asr", nil,
		},
		{
			"language preference order",
			playerWith(track("de", ""), track("en", "")),
			[]string{"en", "de"},
			"en+", nil,
		},
		{
			"english prefix fallback",
			playerWith(track("en-GB", "asr")),
			[]string{"en"},
			"en-GB+asr", nil,
		},
		{
			"no usable track",
			playerWith(track("ja", "")),
			[]string{"en"},
			"", errNoEnglishTrack,
		},
		{
			"no tracks at all",
			playerWith(),
			[]string{"en"},
			"", errNoCaptionTracks,
		},
		{
			"nil captions",
			&playerResp{},
			[]string{"en"},
			"", errNoCaptionTracks,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickTrack(tt.player, tt.langs)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("pickTrack error: %v", err)
			}
			if key := got.LanguageCode + "+" + got.Kind; key != tt.want {
				t.Errorf("picked %q, want %q", key, tt.want)
			}
		})
	}
}

func TestPickTrackPlayabilityReason(t *testing.T) {
	var p playerResp
	_ = json.Unmarshal([]byte(`{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`), &p)
	_, err := pickTrack(&p, []string{"en"})
	if err == nil || err.Error() != "captions unavailable: Video unavailable" {
		t.Errorf("err = %v", err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":{"c":3}}}tail`, `{"a":{"b":{"c":3}}}`},
		{"braces in strings", `{"a":"}{","b":2};`, `{"a":"}{","b":2}`},
		{"escaped quote", `{"a":"say \"}\""};`, `{"a":"say \"}\""}`},
		{"string ends in escaped backslash", `{"path":"C:\\"};var x`, `{"path":"C:\\"}`},
		{"double backslash before brace in string", `{"a":"\\\\}","b":2};`, `{"a":"\\\\}","b":2}`},
		{"unterminated", `{"a":1`, ""},
		{"not an object", `[1,2,3]`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinSegments(t *testing.T) {
	lines := []timedTextLine{
		{Text: "hello &amp; welcome"},
		{Text: ""},
		{Text: "to the <i>show</i>"},
	}
	got := joinSegments(lines)
	want := "hello & welcome to the show"
	if got != want {
		t.Errorf("joinSegments = %q, want %q", got, want)
	}
}
