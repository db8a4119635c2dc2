package sim

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"envpanel/bus"
	"envpanel/errcode"
	"envpanel/types"
	"envpanel/x/conv"
)

var (
	colorBorder = lipgloss.Color("62")
	colorDim    = lipgloss.Color("240")
	colorWarn   = lipgloss.Color("220")
	colorCrit   = lipgloss.Color("196")

	glassStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	statusStyle = lipgloss.NewStyle().Foreground(colorDim)
	faultStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	critStyle   = lipgloss.NewStyle().Foreground(colorCrit).Bold(true)
)

// ── Messages ─────────────────────────────────────────────────────────

type frameMsg types.Frame
type phaseMsg types.PhaseState
type readingMsg types.PanelReading
type faultMsg types.Fault
type closedMsg struct{}

// ── Model ────────────────────────────────────────────────────────────

// Model shows the latest frame and panel state published on the bus.
type Model struct {
	sub     *bus.Subscription
	frame   types.Frame
	phase   types.PhaseState
	reading *types.PanelReading
	fault   *types.Fault
	faults  int
	closed  bool
}

// NewModel subscribes conn to every panel topic.
func NewModel(conn *bus.Connection) Model {
	return Model{sub: conn.Subscribe(bus.T("panel", bus.Multi))}
}

func (m Model) Init() tea.Cmd { return m.next }

// next blocks for the following bus message and turns it into a tea.Msg.
func (m Model) next() tea.Msg {
	for msg := range m.sub.Channel() {
		switch p := msg.Payload.(type) {
		case types.Frame:
			return frameMsg(p)
		case types.PhaseState:
			return phaseMsg(p)
		case types.PanelReading:
			return readingMsg(p)
		case types.Fault:
			return faultMsg(p)
		}
	}
	return closedMsg{}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sub.Unsubscribe()
			return m, tea.Quit
		}
		return m, nil
	case frameMsg:
		m.frame = types.Frame(msg)
	case phaseMsg:
		m.phase = types.PhaseState(msg)
	case readingMsg:
		r := types.PanelReading(msg)
		m.reading = &r
	case faultMsg:
		f := types.Fault(msg)
		m.fault = &f
		m.faults++
	case closedMsg:
		m.closed = true
		return m, nil
	default:
		return m, nil
	}
	return m, m.next
}

func (m Model) View() string {
	var b strings.Builder
	if m.frame.Width > 0 {
		b.WriteString(glassStyle.Render(RenderFrame(m.frame)))
	} else {
		b.WriteString(glassStyle.Render(statusStyle.Render("waiting for first frame")))
	}
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(m.status()))
	if m.fault != nil {
		b.WriteByte('\n')
		style := faultStyle
		if m.fault.Code != string(errcode.SensorRead) {
			style = critStyle
		}
		b.WriteString(style.Render(m.fault.Code + ": " + m.fault.Err))
	}
	if m.closed {
		b.WriteString("\n" + critStyle.Render("bus closed"))
	}
	b.WriteString("\n" + statusStyle.Render("q: quit"))
	return b.String()
}

func (m Model) status() string {
	var buf [24]byte
	s := "phase " + m.phase.Phase.String()
	if m.reading != nil {
		s += "  " + string(conv.AppendDeci(buf[:0], m.reading.Reading.DeciC)) + "°C"
		s += "  " + string(conv.AppendDeci(buf[:0], m.reading.Reading.DeciRH)) + "%RH"
		s += "  " + m.reading.Condition.String()
	}
	s += "  faults " + string(conv.Itoa(buf[:], int64(m.faults)))
	return s
}

// RenderFrame draws f with half-block runes, two pixel rows per line.
func RenderFrame(f types.Frame) string {
	var b strings.Builder
	for y := 0; y < f.Height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < f.Width; x++ {
			top, bot := f.On(x, y), f.On(x, y+1)
			switch {
			case top && bot:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bot:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
