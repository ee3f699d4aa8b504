package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/uniconv/convert"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type opInfo struct {
	name        string
	desc        string
	placeholder string
	step        func(m *interactiveModel, arg string) (string, error)
}

var ops = []opInfo{
	{
		name:        "c8_to_bytes",
		desc:        "feed one UTF-8 byte, re-emit normalized bytes",
		placeholder: "hex byte, e.g. E6",
		step:        stepC8,
	},
	{
		name:        "c16_to_bytes",
		desc:        "feed one UTF-16 unit, emit UTF-8 bytes",
		placeholder: "hex unit, e.g. D83D",
		step:        stepC16,
	},
	{
		name:        "c32_to_bytes",
		desc:        "feed one scalar, emit UTF-8 bytes",
		placeholder: "code point, e.g. U+1F600",
		step:        stepC32,
	},
	{
		name:        "bytes_to_c8",
		desc:        "decode a byte range one output byte per call",
		placeholder: "hex bytes, e.g. E6B0B4",
		step:        stepBytesToC8,
	},
	{
		name:        "bytes_to_c16",
		desc:        "decode a byte range into UTF-16 units",
		placeholder: "hex bytes, e.g. F09F9880",
		step:        stepBytesToC16,
	},
	{
		name:        "bytes_to_c32",
		desc:        "decode a byte range into scalar values",
		placeholder: "hex bytes, e.g. F09F9880",
		step:        stepBytesToC32,
	},
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateFeed
)

type interactiveModel struct {
	st       convert.State
	input    textinput.Model
	buffered []byte // unconsumed input for the bytes_to_* operations
	log      []string
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectOp}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectOp {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInput()
				m.state = stateFeed
			case stateFeed:
				m.stepOnce()
			}

		case "esc":
			if m.state == stateFeed {
				m.state = stateSelectOp
				m.st.Reset()
				m.buffered = nil
				m.log = nil
			}
		}
	}

	if m.state == stateFeed {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	op := ops[m.selected]
	ti := textinput.New()
	ti.Placeholder = op.placeholder
	ti.Prompt = op.name + ": "
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.st.Reset()
	m.buffered = nil
	m.log = nil
}

func (m *interactiveModel) stepOnce() {
	op := ops[m.selected]
	line, err := op.step(m, strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.log = append(m.log, errorStyle.Render(err.Error()))
	} else {
		m.log = append(m.log, resultStyle.Render(line))
	}
	m.input.SetValue("")
}

func stepC8(m *interactiveModel, arg string) (string, error) {
	p, err := parseHexBytes(arg)
	if err != nil || len(p) != 1 {
		return "", fmt.Errorf("need exactly one hex byte")
	}
	dst := make([]byte, convert.MaxBytes)
	n, err := convert.C8ToBytes(dst, p[0], &m.st)
	return describeEncode(fmt.Sprintf("0x%02X", p[0]), dst, n, err)
}

func stepC16(m *interactiveModel, arg string) (string, error) {
	units, err := parseUnits16(arg)
	if err != nil || len(units) != 1 {
		return "", fmt.Errorf("need exactly one 4-digit hex unit")
	}
	dst := make([]byte, convert.MaxBytes)
	n, err := convert.C16ToBytes(dst, units[0], &m.st)
	return describeEncode(fmt.Sprintf("0x%04X", units[0]), dst, n, err)
}

func stepC32(m *interactiveModel, arg string) (string, error) {
	r, err := parseScalar(arg)
	if err != nil {
		return "", err
	}
	dst := make([]byte, convert.MaxBytes)
	n, err := convert.C32ToBytes(dst, r, &m.st)
	return describeEncode(fmt.Sprintf("U+%04X", r), dst, n, err)
}

// bufferInput loads fresh input for the bytes_to_* steps; subsequent calls
// with an empty field keep feeding the unconsumed remainder.
func (m *interactiveModel) bufferInput(arg string) error {
	if arg == "" {
		return nil
	}
	p, err := parseHexBytes(arg)
	if err != nil {
		return err
	}
	m.buffered = append(m.buffered, p...)
	return nil
}

func stepBytesToC8(m *interactiveModel, arg string) (string, error) {
	if err := m.bufferInput(arg); err != nil {
		return "", err
	}
	var out byte
	n, err := convert.BytesToC8(&out, m.buffered, &m.st)
	if err != nil {
		return "", err
	}
	m.advance(n)
	return fmt.Sprintf("%s -> byte 0x%02X", describeCount(n), out), nil
}

func stepBytesToC16(m *interactiveModel, arg string) (string, error) {
	if err := m.bufferInput(arg); err != nil {
		return "", err
	}
	var out uint16
	n, err := convert.BytesToC16(&out, m.buffered, &m.st)
	if err != nil {
		return "", err
	}
	m.advance(n)
	return fmt.Sprintf("%s -> unit 0x%04X", describeCount(n), out), nil
}

func stepBytesToC32(m *interactiveModel, arg string) (string, error) {
	if err := m.bufferInput(arg); err != nil {
		return "", err
	}
	var out rune
	n, err := convert.BytesToC32(&out, m.buffered, &m.st)
	if err != nil {
		return "", err
	}
	m.advance(n)
	return fmt.Sprintf("%s -> U+%04X", describeCount(n), out), nil
}

// advance moves the read cursor past whatever the call consumed. Replayed
// calls consume nothing; Incomplete consumes everything supplied.
func (m *interactiveModel) advance(n convert.Count) {
	switch {
	case n > 0:
		m.buffered = m.buffered[n:]
	case n == convert.Incomplete:
		m.buffered = nil
	case n == convert.Terminator && len(m.buffered) > 0 && m.buffered[0] == 0:
		m.buffered = m.buffered[1:]
	}
}

func describeEncode(in string, dst []byte, n convert.Count, err error) (string, error) {
	switch {
	case err != nil:
		return "", err
	case n == convert.Incomplete:
		return in + ": incomplete, feed the next unit", nil
	case n == convert.Terminator:
		return in + ": terminator -> 00", nil
	default:
		return fmt.Sprintf("%s -> % X", in, dst[:n]), nil
	}
}

func describeCount(n convert.Count) string {
	switch {
	case n == convert.Replayed:
		return "replayed (input not consumed)"
	case n == convert.Incomplete:
		return "incomplete"
	case n == convert.Terminator:
		return "terminator"
	default:
		return fmt.Sprintf("consumed %d", int(n))
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uniconv"))
	b.WriteString(" restartable conversion stepper\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range ops {
			line := op.name + "  " + stateStyle.Render(op.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
				b.WriteString("  " + stateStyle.Render(op.desc))
			} else {
				b.WriteString("  " + opStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter start • q quit"))

	case stateFeed:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")

		b.WriteString(stateStyle.Render(m.describeState()))
		b.WriteString("\n\n")

		start := 0
		if len(m.log) > 10 {
			start = len(m.log) - 10
		}
		for _, line := range m.log[start:] {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter feed one call • esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) describeState() string {
	var parts []string
	if convert.IsInitial(&m.st) {
		parts = append(parts, "state: initial")
	} else {
		parts = append(parts, "state: in progress")
	}
	if n := m.st.Expecting(); n > 0 {
		parts = append(parts, fmt.Sprintf("expecting %d continuation bytes", n))
	}
	if n := m.st.Queued(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d queued output units", n))
	}
	if u, ok := m.st.PendingSurrogate(); ok {
		parts = append(parts, fmt.Sprintf("surrogate 0x%04X held", u))
	}
	if len(m.buffered) > 0 {
		parts = append(parts, fmt.Sprintf("unconsumed input % X", m.buffered))
	}
	return strings.Join(parts, " • ")
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
