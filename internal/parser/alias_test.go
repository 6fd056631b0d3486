package parser

import "testing"

func TestClosestAnchor(t *testing.T) {
	anchors := []string{"base", "defaults", "server"}

	tests := []struct {
		name string
		want string
	}{
		{"defalts", "defaults"},
		{"srv", "server"},
		{"bas", "base"},
		{"basr", "base"},
		{"zzz", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestAnchor(tt.name, anchors); got != tt.want {
				t.Errorf("closestAnchor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	if got := closestAnchor("base", nil); got != "" {
		t.Errorf("closestAnchor with no anchors = %q, want empty", got)
	}
}
