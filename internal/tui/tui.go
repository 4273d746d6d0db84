// Package tui renders the password generator in the terminal and feeds key
// presses into a ui.Controller.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/i18n"
	"github.com/vaultpass/passgen-go/internal/ui"
)

// startupPreset is generated as soon as the program starts.
const startupPreset = crypto.PresetMedium

type (
	// refreshMsg asks for a re-render after the controller changed state.
	refreshMsg struct{}

	// alertMsg carries a notification raised by the controller.
	alertMsg struct{ text string }

	// opDoneMsg reports that a background controller call finished.
	opDoneMsg struct{ err error }
)

// Model is the bubbletea model of the generator screen.
type Model struct {
	ctx  context.Context
	ctrl *ui.Controller

	keys   keyMap
	help   help.Model
	length textinput.Model

	editing bool
	alerts  []string
}

// NewModel creates a Model driving ctrl. Background calls use ctx.
func NewModel(ctx context.Context, ctrl *ui.Controller) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.Width = 4
	ti.SetValue(ctrl.Snapshot().LengthText())

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		keys:   newKeyMap(),
		help:   help.New(),
		length: ti,
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, backend ui.Backend, clipboard ui.Clipboard, opts ...ui.Option) error {
	var p *tea.Program

	// Controller callbacks may fire from inside Update, so messages are sent
	// from their own goroutine.
	send := func(msg tea.Msg) {
		if p != nil {
			go p.Send(msg)
		}
	}
	opts = append(opts,
		ui.WithOnChange(func() { send(refreshMsg{}) }),
		ui.WithNotifier(ui.NotifierFunc(func(text string) { send(alertMsg{text: text}) })),
	)
	ctrl := ui.NewController(backend, clipboard, opts...)

	m := NewModel(ctx, ctrl)
	m.keys.Copy.SetEnabled(clipboardAvailable(clipboard))

	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// clipboardAvailable reports false only for clipboards that can tell they
// have no backing utility.
func clipboardAvailable(clipboard ui.Clipboard) bool {
	if c, ok := clipboard.(interface{ Available() bool }); ok {
		return c.Available()
	}
	return true
}

func (m Model) Init() tea.Cmd {
	return m.background(func(ctx context.Context) error {
		return m.ctrl.GeneratePreset(ctx, startupPreset)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case alertMsg:
		m.alerts = append(m.alerts, msg.text)
		return m, nil

	case refreshMsg, opDoneMsg:
		if !m.editing {
			m.length.SetValue(m.ctrl.Snapshot().LengthText())
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.editing = false
		m.length.Blur()
		m.length.SetValue(m.ctrl.Snapshot().LengthText())
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.length, cmd = m.length.Update(msg)
	if m.ctrl.SetLengthInput(m.length.Value()) {
		m.length.SetValue(m.ctrl.Snapshot().LengthText())
		m.length.CursorEnd()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ctrl.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Easy):
		return m, m.preset(crypto.PresetEasy)
	case key.Matches(msg, m.keys.Medium):
		return m, m.preset(crypto.PresetMedium)
	case key.Matches(msg, m.keys.Strong):
		return m, m.preset(crypto.PresetStrong)
	case key.Matches(msg, m.keys.Custom):
		return m, m.background(m.ctrl.GenerateCustom)

	case key.Matches(msg, m.keys.Uppercase):
		m.ctrl.SetUppercase(!s.Uppercase())
	case key.Matches(msg, m.keys.Digits):
		m.ctrl.SetDigits(!s.Digits())
	case key.Matches(msg, m.keys.Symbols):
		m.ctrl.SetSymbols(!s.Symbols())

	case key.Matches(msg, m.keys.Shorter):
		m.ctrl.SetSlider(s.Slider() - 1)
		m.length.SetValue(m.ctrl.Snapshot().LengthText())
	case key.Matches(msg, m.keys.Longer):
		m.ctrl.SetSlider(s.Slider() + 1)
		m.length.SetValue(m.ctrl.Snapshot().LengthText())

	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.length.CursorEnd()
		cmd := m.length.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		if err := m.ctrl.CopyCurrentPassword(); err != nil {
			m.alerts = append(m.alerts, i18n.Tf("copy_failed", map[string]any{"Error": err.Error()}))
		}

	case key.Matches(msg, m.keys.Dismiss):
		if len(m.alerts) > 0 {
			m.alerts = m.alerts[:len(m.alerts)-1]
		}

	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) preset(name string) tea.Cmd {
	return m.background(func(ctx context.Context) error {
		return m.ctrl.GeneratePreset(ctx, name)
	})
}

// background runs fn off the event loop and reports completion.
func (m Model) background(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{err: fn(ctx)}
	}
}

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("title")))
	b.WriteString("\n")

	field := passwordStyle.Foreground(colorFor(s.DisplayColor())).Render(s.DisplayText())
	btn := s.CopyButton()
	bs := buttonStyle
	if btn.Background != "" {
		bs = bs.Background(colorFor(btn.Background))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, field, bs.Render(btn.Icon+" "+btn.Label)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(i18n.T("strength_label")))
	b.WriteString(renderBar(s.BarWidth(), s.BarColor()))
	label := s.StrengthLabel()
	if label == "" {
		label = i18n.T("strength_unknown")
	}
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(colorFor(s.StrengthColor())).Render(label))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(i18n.T("length_label")))
	b.WriteString(renderSlider(s.Slider()))
	b.WriteString("  ")
	if m.editing {
		b.WriteString(activeStyle.Render("[") + m.length.View() + activeStyle.Render("]"))
	} else {
		b.WriteString("[" + m.length.View() + "]")
	}
	b.WriteString("\n")

	b.WriteString(renderToggle(s.Uppercase(), "u", i18n.T("uppercase_label")))
	b.WriteString(renderToggle(s.Digits(), "d", i18n.T("digits_label")))
	b.WriteString(renderToggle(s.Symbols(), "s", i18n.T("symbols_label")))

	if len(m.alerts) > 0 {
		text := m.alerts[len(m.alerts)-1]
		if n := len(m.alerts); n > 1 {
			text = fmt.Sprintf("%s (+%d)", text, n-1)
		}
		b.WriteString(alertStyle.Render(text + "\n" + i18n.T("dismiss_hint")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return docStyle.Render(b.String())
}

// renderBar draws a bar filled to width percent.
func renderBar(width int, color string) string {
	filled := width * barCells / 100
	fill := lipgloss.NewStyle().Foreground(colorFor(color)).Render(strings.Repeat("█", filled))
	return fill + trackStyle.Render(strings.Repeat("░", barCells-filled))
}

// renderSlider draws the range control with its thumb at value.
func renderSlider(value int) string {
	pos := value - ui.MinLength
	track := ui.MaxLength - ui.MinLength + 1
	return trackStyle.Render(strings.Repeat("─", pos)) +
		thumbStyle.Render("●") +
		trackStyle.Render(strings.Repeat("─", track-pos-1)) +
		fmt.Sprintf(" %2d", value)
}

func renderToggle(on bool, hotkey, label string) string {
	box := "[ ]"
	if on {
		box = activeStyle.Render("[x]")
	}
	return fmt.Sprintf("%s %s %s\n", box, helpStyle.UnsetMarginTop().Render(hotkey), label)
}
