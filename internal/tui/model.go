// Package tui implements the interactive device console: a terminal front
// end that drives a device session with the original driver's verbs — seek
// to an index, write a selector byte, read the digits back — and shows the
// computation latency for each read.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwang0306/fibdrv/internal/device"
	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/sysmon"
)

// maxHistory bounds the number of past reads kept on screen.
const maxHistory = 8

// readTimeout bounds a single read so a runaway computation cannot wedge
// the console.
const readTimeout = time.Minute

type (
	// readResultMsg carries a completed read back into the update loop.
	readResultMsg device.ReadResult
	// readErrMsg carries a failed read.
	readErrMsg struct{ err error }
	// sysStatsMsg carries a host stats sample.
	sysStatsMsg sysmon.Stats
	// tickMsg drives periodic stats sampling.
	tickMsg time.Time
)

// Model is the root bubbletea model for the device console.
type Model struct {
	dev     *device.Device
	session *device.Session

	keymap KeyMap
	help   help.Model
	input  textinput.Model

	entering bool
	reading  bool
	history  []device.ReadResult
	lastErr  error
	sys      sysmon.Stats
	width    int

	exitCode int
}

// NewModel creates a console model bound to an open device session.
func NewModel(dev *device.Device, session *device.Session) Model {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("0..%d", dev.MaxIndex())
	input.CharLimit = 20
	input.Width = 24

	return Model{
		dev:      dev,
		session:  session,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.handleGotoKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case readResultMsg:
		m.reading = false
		m.lastErr = nil
		m.history = append([]device.ReadResult{device.ReadResult(msg)}, m.history...)
		if len(m.history) > maxHistory {
			m.history = m.history[:maxHistory]
		}
		return m, nil

	case readErrMsg:
		m.reading = false
		m.lastErr = msg.err
		return m, nil

	case tickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case sysStatsMsg:
		m.sys = sysmon.Stats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Read):
		if m.reading {
			return m, nil
		}
		m.reading = true
		return m, readCmd(m.session)

	case key.Matches(msg, m.keymap.SeekLeft):
		m.seek(-1, io.SeekCurrent)
		return m, nil

	case key.Matches(msg, m.keymap.SeekRight):
		m.seek(1, io.SeekCurrent)
		return m, nil

	case key.Matches(msg, m.keymap.SeekStart):
		m.seek(0, io.SeekStart)
		return m, nil

	case key.Matches(msg, m.keymap.SeekEnd):
		m.seek(0, io.SeekEnd)
		return m, nil

	case key.Matches(msg, m.keymap.Goto):
		m.entering = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Linear):
		m.selectStrategy(device.SelectLinear)
		return m, nil

	case key.Matches(msg, m.keymap.Doubling):
		m.selectStrategy(device.SelectDoubling)
		return m, nil

	case key.Matches(msg, m.keymap.DoublingOpt):
		m.selectStrategy(device.SelectDoublingOpt)
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleGotoKey routes keys to the index input while it is active.
func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.entering = false
		m.input.Blur()
		if v, err := strconv.ParseUint(strings.TrimSpace(m.input.Value()), 10, 63); err == nil {
			m.seek(int64(v), io.SeekStart)
		}
		return m, nil
	case tea.KeyEsc:
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// seek moves the session position; seek errors surface in the status line.
func (m *Model) seek(offset int64, whence int) {
	if _, err := m.session.Seek(offset, whence); err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
}

// selectStrategy writes the selector byte through the session, exactly as a
// legacy client would.
func (m *Model) selectStrategy(b byte) {
	if _, err := m.session.Write([]byte{b}); err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
}

// View renders the console.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fibdrv console"))
	b.WriteString("\n")

	status := fmt.Sprintf("position %s   strategy %s   %s",
		positionStyle.Render(strconv.FormatUint(m.session.Position(), 10)),
		strategyStyle.Render(m.dev.Selector().Current()),
		statusStyle.Render(fmt.Sprintf("cpu %.0f%%  mem %.0f%%", m.sys.CPUPercent, m.sys.MemPercent)),
	)
	b.WriteString(panelStyle.Render(status))
	b.WriteString("\n")

	switch {
	case m.entering:
		b.WriteString(panelStyle.Render("go to index: " + m.input.View()))
	case m.reading:
		b.WriteString(panelStyle.Render(statusStyle.Render("computing...")))
	case m.lastErr != nil:
		b.WriteString(panelStyle.Render(errorStyle.Render(m.lastErr.Error())))
	default:
		b.WriteString(panelStyle.Render(m.renderHistory()))
	}
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return statusStyle.Render("no reads yet; press r")
	}

	lines := make([]string, 0, len(m.history))
	for _, r := range m.history {
		digits := r.Digits
		if len(digits) > 48 {
			digits = digits[:20] + "..." + digits[len(digits)-20:]
		}
		lines = append(lines, fmt.Sprintf("F(%d) [%s, %s] = %s",
			r.Index, r.Strategy, r.Elapsed, resultStyle.Render(digits)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run is the public entry point for the console mode. It opens an exclusive
// session, runs the program, and returns the exit code. A busy device maps
// to its dedicated exit code rather than a generic failure.
func Run(ctx context.Context, dev *device.Device) int {
	session, err := dev.Open()
	if err != nil {
		if errors.Is(err, device.ErrBusy) {
			return apperrors.ExitErrorBusy
		}
		return apperrors.ExitErrorGeneric
	}
	defer session.Close()

	p := tea.NewProgram(NewModel(dev, session), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// readCmd performs the device read off the update loop.
func readCmd(session *device.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		res, err := session.Read(ctx)
		if err != nil {
			return readErrMsg{err: err}
		}
		return readResultMsg(res)
	}
}

// tickCmd returns a command that sends a tickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return sysStatsMsg(sysmon.Sample())
	}
}
