package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwang0306/fibdrv/internal/device"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dev := device.New(fibonacci.NewDefaultFactory())
	session, err := dev.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return NewModel(dev, session)
}

func press(m Model, keys string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model)
}

func TestSeekKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "l")
	m = press(m, "l")
	m = press(m, "l")
	if pos := m.session.Position(); pos != 3 {
		t.Errorf("position = %d, want 3", pos)
	}

	m = press(m, "h")
	if pos := m.session.Position(); pos != 2 {
		t.Errorf("position = %d, want 2", pos)
	}

	// Seeking below zero clamps.
	for i := 0; i < 5; i++ {
		m = press(m, "h")
	}
	if pos := m.session.Position(); pos != 0 {
		t.Errorf("position = %d, want clamp at 0", pos)
	}

	m = press(m, "$")
	if pos := m.session.Position(); pos != m.dev.MaxIndex() {
		t.Errorf("position = %d, want ceiling %d", pos, m.dev.MaxIndex())
	}

	m = press(m, "^")
	if pos := m.session.Position(); pos != 0 {
		t.Errorf("position = %d, want 0 after home", pos)
	}
}

func TestStrategyKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "1")
	if got := m.dev.Selector().Current(); got != fibonacci.StrategyDoubling {
		t.Errorf("selector = %q after '1'", got)
	}
	m = press(m, "2")
	if got := m.dev.Selector().Current(); got != fibonacci.StrategyDoublingOpt {
		t.Errorf("selector = %q after '2'", got)
	}
	m = press(m, "0")
	if got := m.dev.Selector().Current(); got != fibonacci.StrategyLinear {
		t.Errorf("selector = %q after '0'", got)
	}
}

func TestReadKeyProducesResult(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 10; i++ {
		m = press(m, "l")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if !m.reading {
		t.Fatal("model not in reading state")
	}
	if cmd == nil {
		t.Fatal("read key returned no command")
	}

	// Execute the command synchronously and feed the message back.
	msg := cmd()
	res, ok := msg.(readResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want readResultMsg", msg)
	}
	if res.Digits != "55" {
		t.Errorf("F(10) = %q, want 55", res.Digits)
	}

	next, _ = m.Update(msg)
	m = next.(Model)
	if m.reading {
		t.Error("model still reading after result")
	}
	if len(m.history) != 1 || m.history[0].Index != 10 {
		t.Errorf("history = %+v", m.history)
	}
}

func TestGotoInput(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "g")
	if !m.entering {
		t.Fatal("goto did not activate input")
	}

	// While entering, digits go to the input, not the selector.
	m = press(m, "4")
	m = press(m, "2")
	if got := m.dev.Selector().Current(); got != fibonacci.StrategyLinear {
		t.Errorf("selector changed while typing: %q", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.entering {
		t.Error("input still active after enter")
	}
	if pos := m.session.Position(); pos != 42 {
		t.Errorf("position = %d, want 42", pos)
	}
}

func TestGotoInput_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "g")
	m = press(m, "9")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.entering {
		t.Error("esc did not cancel input")
	}
	if pos := m.session.Position(); pos != 0 {
		t.Errorf("position = %d, want unchanged 0", pos)
	}
}

func TestHistoryCapped(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxHistory+3; i++ {
		next, _ := m.Update(readResultMsg{Index: uint64(i), Digits: "1"})
		m = next.(Model)
	}
	if len(m.history) != maxHistory {
		t.Errorf("history length = %d, want %d", len(m.history), maxHistory)
	}
	// Most recent first.
	if m.history[0].Index != uint64(maxHistory+2) {
		t.Errorf("history[0].Index = %d", m.history[0].Index)
	}
}

func TestViewRendersStatus(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	for _, want := range []string{"fibdrv console", "position", "linear"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
