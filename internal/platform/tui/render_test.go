package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score")
	s.DrawTextColor(6, 0, "42", core.ColorBrightYellow)
	s.SetCell(0, 2, '█', core.ColorBrightCyan)
	s.SetCell(1, 2, '█', core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	plain := stripANSI(out)
	if !strings.Contains(plain, "Score 42") {
		t.Errorf("rendered text lost: %q", plain)
	}
	if !strings.Contains(plain, "██") {
		t.Errorf("blocks lost: %q", plain)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault + 1; c <= core.ColorGray; c++ {
		if ansiCodes[c] == "" {
			t.Errorf("no ANSI code for %v", c)
		}
	}
	if len(colorStyles) != len(ansiCodes) {
		t.Errorf("styles = %d, codes = %d", len(colorStyles), len(ansiCodes))
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	if stripANSI(got) != "x" {
		t.Errorf("fallback style changed text: %q", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

// stripANSI drops CSI escape sequences from styled output.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
