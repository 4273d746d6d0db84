package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vaultpass/passgen-go/internal/i18n"
)

type keyMap struct {
	Easy      key.Binding
	Medium    key.Binding
	Strong    key.Binding
	Custom    key.Binding
	Uppercase key.Binding
	Digits    key.Binding
	Symbols   key.Binding
	Shorter   key.Binding
	Longer    key.Binding
	Edit      key.Binding
	Copy      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Easy:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", i18n.T("help_preset_easy"))),
		Medium:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", i18n.T("help_preset_medium"))),
		Strong:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", i18n.T("help_preset_strong"))),
		Custom:    key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g", i18n.T("help_custom"))),
		Uppercase: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", i18n.T("help_toggle_uppercase"))),
		Digits:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", i18n.T("help_toggle_digits"))),
		Symbols:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", i18n.T("help_toggle_symbols"))),
		Shorter:   key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/→", i18n.T("help_length"))),
		Longer:    key.NewBinding(key.WithKeys("right", "l", "+")),
		Edit:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", i18n.T("help_edit_length"))),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("help_copy"))),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help_dismiss"))),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", i18n.T("help_quit"))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Easy, k.Medium, k.Strong, k.Custom, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Easy, k.Medium, k.Strong, k.Custom},
		{k.Uppercase, k.Digits, k.Symbols},
		{k.Shorter, k.Edit},
		{k.Copy, k.Dismiss, k.Quit},
	}
}
