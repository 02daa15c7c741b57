package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(200); got != ContentMaxWidth {
		t.Errorf("ContentWidth(200) = %d, want %d", got, ContentMaxWidth)
	}
	if got := ContentWidth(40); got != 36 {
		t.Errorf("ContentWidth(40) = %d, want 36", got)
	}
	if got := ContentWidth(2); got != 0 {
		t.Errorf("ContentWidth(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "3 / 10", 80)
	for _, want := range []string{AppName, "Quiz", "3 / 10"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if got := lipgloss.Height(h); got != 3 {
		t.Errorf("header height = %d, want 3", got)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "back") {
		t.Errorf("footer missing hint: %q", f)
	}
}
