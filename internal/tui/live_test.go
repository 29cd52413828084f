package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel() Model {
	return NewModel("bisection on sqrt2", []float64{1, 1.5, 1.25, 1.375, 1.4375}, math.Sqrt2, 10)
}

func TestTickRevealsIterates(t *testing.T) {
	m := testModel()

	if m.shown != 1 {
		t.Fatalf("expected 1 visible iterate initially, got %d", m.shown)
	}

	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.shown != 2 {
		t.Errorf("expected 2 visible iterates after a tick, got %d", m.shown)
	}

	for i := 0; i < 10; i++ {
		next, _ = m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if m.shown != 5 {
		t.Errorf("expected reveal to stop at 5 iterates, got %d", m.shown)
	}
}

func TestPauseAndRestart(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.running {
		t.Error("space should pause")
	}

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.shown != 1 {
		t.Errorf("paused model advanced to %d", m.shown)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	if !m.running || m.shown != 1 {
		t.Error("r should restart the animation")
	}
}

func TestViewShowsErrorAgainstTarget(t *testing.T) {
	m := testModel()

	view := m.View()
	if !strings.Contains(view, "bisection on sqrt2") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "error") {
		t.Error("view missing error readout when target is known")
	}

	noTarget := NewModel("scan", []float64{1, 2}, math.NaN(), 10)
	if strings.Contains(noTarget.View(), "error") {
		t.Error("view should omit error readout without a target")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
