package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/alexanderramin/gradepoint/internal/service"
	"github.com/alexanderramin/gradepoint/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldCalcType fieldKind = iota
	fieldSemester
	fieldTrack
	fieldConfirm
	fieldCPIMode
	fieldPreviousCPI
	fieldCurrentSPI
	fieldGrade
	fieldCalculate
)

// field is one focusable row of the form. index is the course position
// for fieldGrade.
type field struct {
	kind  fieldKind
	index int
}

func (f field) isText() bool {
	switch f.kind {
	case fieldPreviousCPI, fieldCurrentSPI, fieldGrade:
		return true
	}
	return false
}

func (f field) isChoice() bool {
	switch f.kind {
	case fieldCalcType, fieldSemester, fieldTrack, fieldCPIMode:
		return true
	}
	return false
}

type calcKeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	Reset      key.Binding
	GradeTable key.Binding
	Quit       key.Binding
}

func defaultCalcKeyMap() calcKeyMap {
	return calcKeyMap{
		Next:       key.NewBinding(key.WithKeys("down", "tab")),
		Prev:       key.NewBinding(key.WithKeys("up", "shift+tab")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		Enter:      key.NewBinding(key.WithKeys("enter")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r")),
		GradeTable: key.NewBinding(key.WithKeys("ctrl+g")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

var calcTypes = []domain.CalcType{domain.CalcSPI, domain.CalcCPI}

// calcModel is the interactive calculator form. All state transitions go
// through session.Reduce; the model only tracks focus and the text editor.
// Calculations run through the service, tagged with the session id.
type calcModel struct {
	ctx       context.Context
	calc      service.CalculatorService
	cat       session.Catalog
	numbers   []int
	tracks    func(int) []domain.Track
	precision int

	state session.State
	focus int
	input textinput.Model
	keys  calcKeyMap

	quitting bool
}

func newCalcModel(ctx context.Context, a *App) calcModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0-10"
	ti.CharLimit = 8
	ti.Width = 10

	m := calcModel{
		ctx:       ctx,
		calc:      a.Calculator,
		cat:       a.Catalog,
		numbers:   a.Catalog.Numbers(),
		tracks:    a.Catalog.Tracks,
		precision: a.Config.Precision,
		state:     session.New(a.Config.AllowLetters),
		input:     ti,
		keys:      defaultCalcKeyMap(),
	}
	m.syncInput()
	return m
}

// fields lists the rows visible for the current state, top to bottom.
func (m calcModel) fields() []field {
	fs := []field{{kind: fieldCalcType}, {kind: fieldSemester}}
	if m.state.Number > 0 && len(m.tracks(m.state.Number)) > 0 {
		fs = append(fs, field{kind: fieldTrack})
	}
	fs = append(fs, field{kind: fieldConfirm})

	if m.state.ShowCPIOptions() {
		fs = append(fs, field{kind: fieldCPIMode})
		if m.state.CPIMode != "" {
			fs = append(fs, field{kind: fieldPreviousCPI})
		}
		if m.state.CPIMode == domain.CPIFromSPI {
			fs = append(fs, field{kind: fieldCurrentSPI})
		}
	}
	if m.state.ShowGradeInput() {
		for i := range m.state.Grades {
			fs = append(fs, field{kind: fieldGrade, index: i})
		}
	}

	return append(fs, field{kind: fieldCalculate})
}

func (m calcModel) focused() field {
	fs := m.fields()
	return fs[min(m.focus, len(fs)-1)]
}

func (m *calcModel) dispatch(e session.Event) {
	m.state = session.Reduce(m.cat, m.state, e)
	m.focus = min(m.focus, len(m.fields())-1)
}

func (m *calcModel) moveFocus(delta int) {
	n := len(m.fields())
	m.focus = (m.focus + delta + n) % n
	m.syncInput()
}

// syncInput loads the focused text field into the editor, or blurs it.
func (m *calcModel) syncInput() {
	f := m.focused()
	if !f.isText() {
		m.input.Blur()
		return
	}
	m.input.SetValue(m.textValue(f))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m calcModel) textValue(f field) string {
	switch f.kind {
	case fieldPreviousCPI:
		return m.state.PreviousCPI
	case fieldCurrentSPI:
		return m.state.CurrentSPI
	case fieldGrade:
		if f.index < len(m.state.Grades) {
			return m.state.Grades[f.index]
		}
	}
	return ""
}

func (m *calcModel) setText(f field, text string) {
	switch f.kind {
	case fieldPreviousCPI:
		m.dispatch(session.UpdatePreviousCPI{Text: text})
	case fieldCurrentSPI:
		m.dispatch(session.UpdateCurrentSPI{Text: text})
	case fieldGrade:
		m.dispatch(session.UpdateGrade{Index: f.index, Text: text})
	}
}

// cycle moves a choice field one option left or right.
func (m *calcModel) cycle(f field, delta int) {
	switch f.kind {
	case fieldCalcType:
		i := cycleIndex(indexOf(calcTypes, m.state.CalcType), delta, len(calcTypes))
		m.dispatch(session.SelectCalcType{Type: calcTypes[i]})
	case fieldSemester:
		i := cycleIndex(indexOf(m.numbers, m.state.Number), delta, len(m.numbers))
		m.dispatch(session.SelectSemester{Number: m.numbers[i]})
	case fieldTrack:
		tracks := m.tracks(m.state.Number)
		i := cycleIndex(indexOf(tracks, m.state.Track), delta, len(tracks))
		m.dispatch(session.SelectTrack{Track: tracks[i]})
	case fieldCPIMode:
		i := cycleIndex(indexOf(domain.CPIModes, m.state.CPIMode), delta, len(domain.CPIModes))
		m.dispatch(session.SelectCPIMode{Mode: domain.CPIModes[i]})
	}
}

func indexOf[T comparable](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// cycleIndex steps from cur, where -1 means nothing is selected yet and
// either direction lands on the first option.
func cycleIndex(cur, delta, n int) int {
	if cur < 0 {
		return 0
	}
	return (cur + delta + n) % n
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	f := m.focused()

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Reset):
		m.dispatch(session.Reset{})
		m.focus = 0
		m.syncInput()
		return m, nil

	case key.Matches(keyMsg, m.keys.GradeTable):
		m.dispatch(session.ToggleGradeTable{})
		return m, nil

	case key.Matches(keyMsg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case f.isChoice() && key.Matches(keyMsg, m.keys.Left):
		m.cycle(f, -1)
		m.syncInput()
		return m, nil

	case f.isChoice() && key.Matches(keyMsg, m.keys.Right):
		m.cycle(f, 1)
		m.syncInput()
		return m, nil

	case key.Matches(keyMsg, m.keys.Enter):
		return m.activate(f), nil
	}

	if !f.isText() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if after := m.input.Value(); after != before {
		m.setText(f, after)
	}
	return m, cmd
}

// activate handles Enter: buttons fire, every other row advances focus.
func (m calcModel) activate(f field) calcModel {
	switch f.kind {
	case fieldConfirm:
		m.dispatch(session.Confirm{})
		if m.state.Confirmed {
			m.moveFocus(1)
			return m
		}
	case fieldCalculate:
		m.calculate()
	default:
		m.moveFocus(1)
		return m
	}
	m.syncInput()
	return m
}

func (m *calcModel) calculate() {
	if m.calc == nil || m.state.Ready() != nil {
		m.dispatch(session.Calculate{})
		return
	}

	ctx := service.WithSessionID(m.ctx, m.state.ID)
	var ev session.Calculated
	if m.state.CalcType == domain.CalcSPI {
		resp, err := m.calc.SPI(ctx, m.state.SPIRequest())
		if err != nil {
			ev.Err = err
		} else {
			ev.SPI = &resp.SPI
		}
	} else {
		resp, err := m.calc.CPI(ctx, m.state.CPIRequest())
		if err != nil {
			ev.Err = err
		} else {
			ev.SPI, ev.CPI = &resp.SPI, &resp.CPI
		}
	}
	m.dispatch(ev)
}

// ── rendering ────────────────────────────────────────────────────────────────

const labelWidth = 34

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	focusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
)

func (m calcModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Gradepoint"))
	b.WriteString("\n\n")

	current := m.focused()
	badGrade := -1
	var gradeErr *engine.GradeError
	if errors.As(m.state.Err, &gradeErr) {
		badGrade = gradeErr.Position
	}

	for _, f := range m.fields() {
		isFocused := f == current
		cursor := "  "
		if isFocused {
			cursor = cursorStyle.Render("> ")
		}

		switch f.kind {
		case fieldConfirm, fieldCalculate:
			label := "Confirm semester"
			if f.kind == fieldCalculate {
				label = "Calculate"
			}
			style := buttonStyle
			if isFocused {
				style = focusedButton
			}
			b.WriteString(cursor + style.Render(label) + "\n")
			continue
		}

		label := m.fieldLabel(f)
		pad := strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 1))
		line := cursor + label + pad + m.fieldValue(f, isFocused)
		if f.kind == fieldGrade && f.index == badGrade {
			line += " " + formatter.StyleRed.Render("!")
		}
		b.WriteString(line + "\n")
	}

	if m.state.Err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render(formatter.ErrorMessage(m.state.Err)))
		b.WriteString("\n")
	}

	if m.state.HasResult() {
		b.WriteString("\n")
		if m.state.SPI != nil {
			b.WriteString(formatter.IndexLine("SPI", *m.state.SPI, m.precision) + "\n")
		}
		if m.state.CPI != nil {
			b.WriteString(formatter.IndexLine("CPI", *m.state.CPI, m.precision) + "\n")
		}
	}

	if m.state.ShowGradeTable {
		b.WriteString("\n")
		b.WriteString(formatter.FormatGradeTable(engine.LetterGrades()))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ move · ←/→ choose · enter select · ctrl+g grade table · ctrl+r reset · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m calcModel) fieldLabel(f field) string {
	switch f.kind {
	case fieldCalcType:
		return "Calculation"
	case fieldSemester:
		return "Semester"
	case fieldTrack:
		return "Option"
	case fieldCPIMode:
		return "CPI from"
	case fieldPreviousCPI:
		return "Previous CPI"
	case fieldCurrentSPI:
		return "Current SPI"
	case fieldGrade:
		if m.state.Semester != nil && f.index < len(m.state.Semester.Courses) {
			c := m.state.Semester.Courses[f.index]
			return fmt.Sprintf("%s %s (%s)", c.Code, truncate(c.Name, 18), formatter.FormatCredit(c.Credit))
		}
	}
	return ""
}

func (m calcModel) fieldValue(f field, isFocused bool) string {
	if f.isText() {
		if isFocused {
			return m.input.View()
		}
		if v := m.textValue(f); v != "" {
			return v
		}
		return formatter.Dim("-")
	}

	var v string
	switch f.kind {
	case fieldCalcType:
		v = strings.ToUpper(string(m.state.CalcType))
	case fieldSemester:
		if m.state.Number > 0 {
			v = fmt.Sprint(m.state.Number)
		}
	case fieldTrack:
		if m.state.Track != domain.NoTrack {
			v = m.state.SemesterID().String()
		}
	case fieldCPIMode:
		switch m.state.CPIMode {
		case domain.CPIFromGrades:
			v = "grades"
		case domain.CPIFromSPI:
			v = "current SPI"
		}
	}
	if v == "" {
		v = formatter.Dim("select")
	}
	if isFocused {
		return cursorStyle.Render("‹ ") + v + cursorStyle.Render(" ›")
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
