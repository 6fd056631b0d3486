package parser

import "testing"

func TestParseBlockHeader(t *testing.T) {
	tests := []struct {
		header string
		chomp  chomping
		indent int
		ok     bool
	}{
		{"|", chompClip, 0, true},
		{">", chompClip, 0, true},
		{"|-", chompStrip, 0, true},
		{"|+", chompKeep, 0, true},
		{"|2", chompClip, 2, true},
		{"|2-", chompStrip, 2, true},
		{"|+3", chompKeep, 3, true},
		{"|- # comment", chompStrip, 0, true},
		{"|0", chompClip, 0, false},
		{"|2-x", chompClip, 0, false},
		{"|--", chompClip, 0, false},
		{"|#", chompClip, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			chomp, indent, ok := parseBlockHeader(tt.header)
			if ok != tt.ok || chomp != tt.chomp || indent != tt.indent {
				t.Errorf("parseBlockHeader(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.header, chomp, indent, ok, tt.chomp, tt.indent, tt.ok)
			}
		})
	}
}

func TestChompBlock(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		chomp chomping
		want  string
	}{
		{"clip one", "a\n", chompClip, "a\n"},
		{"clip many", "a\n\n  \n", chompClip, "a\n"},
		{"clip none", "a", chompClip, "a"},
		{"strip", "a\n\n", chompStrip, "a"},
		{"keep", "a\n\n", chompKeep, "a\n\n"},
		{"trailing spaces without break", "a  ", chompStrip, "a  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chompBlock(tt.text, tt.chomp); got != tt.want {
				t.Errorf("chompBlock(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFoldBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"join", "a\nb\nc\n", "a b c\n"},
		{"paragraph", "a\n\nb", "a\nb"},
		{"two empty lines", "a\n\n\nb", "a\n\nb"},
		{"indented line kept", "a\n  b\nc", "a\n  b\nc"},
		{"empty line before indented", "a\n\n  b", "a\n\n  b"},
		{"two empty lines before indented", "a\n\n\n  b", "a\n\n  b"},
		{"trailing breaks kept", "a\nb\n\n", "a b\n\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foldBlock(tt.input); got != tt.want {
				t.Errorf("foldBlock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContentIndent(t *testing.T) {
	tests := []struct {
		block string
		want  int
	}{
		{"  a\n", 2},
		{"\n   \n  a", 2},
		{"a", 0},
		{"   ", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := contentIndent(tt.block); got != tt.want {
			t.Errorf("contentIndent(%q) = %d, want %d", tt.block, got, tt.want)
		}
	}
}
