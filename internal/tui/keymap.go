// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keydash/internal/i18n"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Toggle   key.Binding
	Copy     key.Binding
	Revoke   key.Binding
	Create   key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Toggle, km.Copy, km.Revoke, km.Create, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Focus},
		{km.Toggle, km.Copy, km.Revoke},
		{km.Create, km.Language},
		{km.Help, km.Quit},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// newKeyMap builds the bindings with help texts in the active language.
func newKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("help.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("help.down")),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("help.sample")),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v", " "),
			key.WithHelp("v", i18n.T("help.toggle")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", i18n.T("help.copy")),
		),
		Revoke: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", i18n.T("help.revoke")),
		),
		Create: key.NewBinding(
			key.WithKeys("n", "ctrl+k"),
			key.WithHelp("n/ctrl+k", i18n.T("help.create")),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", i18n.T("help.language")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.more")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}
