package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// recordingGame is a registry.Game that logs what the platform sends it.
type recordingGame struct {
	resets   int
	resized  [][2]int
	steps    []core.InputFrame
	overAt   int // step count at which the game ends, 0 = never
	rendered int
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = nil
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.State(), RowsDetected: 1}
}

func (g *recordingGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "recording")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{
		Score:    len(g.steps) * 10,
		Lines:    len(g.steps),
		GameOver: g.overAt > 0 && len(g.steps) >= g.overAt,
	}
}

func (g *recordingGame) Resize(w, h int) {
	g.resized = append(g.resized, [2]int{w, h})
}

func newTestModel(g *recordingGame, history *History) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}
	return NewModel(g, cfg, Options{History: history}).Start()
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(g.steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.steps))
	}
	first := g.steps[0]
	if len(first.Actions) != 2 || first.Actions[0] != core.ActionRotate || first.Actions[1] != core.ActionLeft {
		t.Errorf("first frame = %v, want [Rotate Left]", first.Actions)
	}
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("second frame should be empty, got %v", g.steps[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{}, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if view := next.View(); view != "" {
		t.Errorf("expected empty view after quit, got %q", view)
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resizable game was reset %d times, want 1", g.resets)
	}
	if len(g.resized) != 1 || g.resized[0] != [2]int{100, 30 - helpHeight} {
		t.Errorf("Resize calls = %v", g.resized)
	}
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	g := &recordingGame{overAt: 2}
	history := NewHistory()
	m := newTestModel(g, history)

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	if history.Len() != 1 {
		t.Fatalf("expected 1 recorded result, got %d", history.Len())
	}
	r := history.Top("recording")[0]
	if r.Title != "Recording" || r.Score != 20 || r.Lines != 2 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &recordingGame{overAt: 1}
	m := newTestModel(g, NewHistory())

	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("expected restart to reset the game, resets = %d", g.resets)
	}
	if m.gameState.GameOver || m.recorded {
		t.Error("restart should clear the game over state")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, nil)

	view := stripANSI(m.View())
	if g.rendered != 1 {
		t.Errorf("expected one render, got %d", g.rendered)
	}
	for _, want := range []string{"recording", "left", "rotate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryTopOrdersByScore(t *testing.T) {
	h := NewHistory()
	h.Add(Result{GameID: "blockfall", Score: 10, Lines: 1})
	h.Add(Result{GameID: "blockfall_zen", Score: 999})
	h.Add(Result{GameID: "blockfall", Score: 30})
	h.Add(Result{GameID: "blockfall", Score: 10, Lines: 2})

	top := h.Top("blockfall")
	if len(top) != 3 {
		t.Fatalf("expected 3 results, got %d", len(top))
	}
	if top[0].Score != 30 || top[1].Lines != 1 || top[2].Lines != 2 {
		t.Errorf("unexpected order: %+v", top)
	}
	if h.Len() != 4 {
		t.Errorf("Len() = %d, want 4", h.Len())
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
