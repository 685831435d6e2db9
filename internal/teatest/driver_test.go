package teatest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// echoModel appends typed runes, echoes them back through a Cmd and quits on esc.
type echoModel struct {
	typed  string
	echoed []string
	width  int
}

func (m echoModel) Init() tea.Cmd { return nil }

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case echoMsg:
		m.echoed = append(m.echoed, string(msg))
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			r := string(msg.Runes)
			m.typed += r
			return m, tea.Batch(func() tea.Msg { return echoMsg(r) }, nil)
		}
	}
	return m, nil
}

func (m echoModel) View() string {
	return lipgloss.NewStyle().Bold(true).Render("typed:" + m.typed)
}

func TestDriver_DrainsBatchedCmds(t *testing.T) {
	d := New(t, echoModel{}, WithSize(80, 24))
	d.DrainInit()

	d.Type("ab")

	m := d.Model.(echoModel)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, "ab", m.typed)
	assert.Equal(t, []string{"a", "b"}, m.echoed)
}

func TestDriver_QuitStopsInput(t *testing.T) {
	d := New(t, echoModel{})
	d.PressEsc()
	assert.True(t, d.Quitting)

	d.Type("x")
	assert.Empty(t, d.Model.(echoModel).typed)
}

func TestDriver_PlainView(t *testing.T) {
	d := New(t, echoModel{})
	d.Type("hi")

	d.ViewContains("typed:hi")
	assert.False(t, strings.Contains(d.PlainView(), "\x1b["))
}
