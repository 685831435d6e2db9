// Package teatest drives a bubbletea model synchronously in tests: Update is
// called directly and returned Cmds are drained in place of a tea.Program.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains so a self-scheduling model cannot loop.
const MaxDrainDepth = 100

// Cursor blink Cmds sleep for about 530ms; anything slower than this is skipped.
const cmdTimeout = 10 * time.Millisecond

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been drained.
	Quitting bool
}

type Option func(*Driver)

// New wraps model. Call DrainInit before sending keys.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the result. It is a no-op after quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter()     { d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.press(tea.KeyEsc) }
func (d *Driver) PressUp()        { d.press(tea.KeyUp) }
func (d *Driver) PressDown()      { d.press(tea.KeyDown) }
func (d *Driver) PressRight()     { d.press(tea.KeyRight) }
func (d *Driver) PressBackspace() { d.press(tea.KeyBackspace) }

// PressCtrl sends a control key such as tea.KeyCtrlR.
func (d *Driver) PressCtrl(k tea.KeyType) { d.press(k) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// PlainView is View with ANSI styling stripped.
func (d *Driver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.Model.View(), "")
}

// ViewContains fails the test for every want missing from PlainView.
func (d *Driver) ViewContains(want ...string) {
	d.T.Helper()
	view := d.PlainView()
	for _, w := range want {
		if !strings.Contains(view, w) {
			d.T.Errorf("view does not contain %q:\n%s", w, view)
		}
	}
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := run(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

// run returns cmd's message, or nil when it does not finish within cmdTimeout.
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// Blink message types are unexported in bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
