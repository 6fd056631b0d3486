package parser

import "testing"

func TestFoldFlow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		escapes bool
		want    string
	}{
		{"single line", "  a b  ", false, "  a b  "},
		{"single break", "a\nb", false, "a b"},
		{"two breaks", "a\n\nb", false, "a\nb"},
		{"three breaks", "a\n\n\nb", false, "a\n\nb"},
		{"blanks around breaks", "a  \n   b", false, "a b"},
		{"outer blanks kept", " a\nb ", false, " a b "},
		{"leading breaks kept", "\n\nb", false, "\n\nb"},
		{"escaped break", "a\\\n  b", true, "ab"},
		{"escaped backslash before break", "a\\\\\nb", true, "a\\\\ b"},
		{"escaped trailing blank", "a\\ \nb", true, "a\\  b"},
		{"backslash ignored without escapes", "a\\\nb", false, "a\\ b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foldFlow(tt.input, tt.escapes); got != tt.want {
				t.Errorf("foldFlow(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, "plain"},
		{`\0\a\b\t\n\v\f\r\e`, "\x00\a\b\t\n\v\f\r\x1b"},
		{`\ \"\\\/`, ` "\/`},
		{`\N\_\L\P`, "\u0085\u00a0\u2028\u2029"},
		{`\x41é\U0001F600`, "Aé😀"},
		{`\q`, `\q`},
		{`\x4`, `\x4`},
		{`\uZZZZ`, `\uZZZZ`},
		{`end\`, `end\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := unescape(tt.input); got != tt.want {
				t.Errorf("unescape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"01:30", 90, false},
		{"01:00:00", 3600, false},
		{"99:99:99:99:99:99:99:99:99:99:99:99", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSexagesimal(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSexagesimal(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSexagesimal(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
