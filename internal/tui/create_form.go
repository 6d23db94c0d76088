// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the create dialog: a name input and a permission
// selector. The dialog only collects input; the key itself is created by
// the dashboard model when it receives createKeyMsg.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/model"
)

// createKeyMsg asks the dashboard to create a key.
type createKeyMsg struct {
	name string
	perm model.Permission
}

// closeModalMsg closes whichever dialog is open.
type closeModalMsg struct{}

// createFormModel holds the state of the create dialog.
type createFormModel struct {
	focusIndex int // 0 for name, 1 for permission
	input      textinput.Model
	permIndex  int // index into model.Permissions
}

func newCreateFormModel() createFormModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("create.name_placeholder")
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "› "
	ti.TextStyle = focusedStyle
	ti.Cursor.Style = focusedStyle
	ti.Focus()

	f := createFormModel{input: ti}
	for i, p := range model.Permissions {
		if p == model.DefaultPermission {
			f.permIndex = i
		}
	}
	return f
}

func (m createFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// permission returns the selected permission.
func (m createFormModel) permission() model.Permission {
	return model.Permissions[m.permIndex]
}

func (m createFormModel) Update(msg tea.Msg) (createFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return closeModalMsg{} }
		case "enter":
			req := createKeyMsg{name: strings.TrimSpace(m.input.Value()), perm: m.permission()}
			return m, func() tea.Msg { return req }
		case "tab", "shift+tab", "up", "down":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.input.Blur()
				return m, nil
			}
			m.focusIndex = 0
			return m, m.input.Focus()
		case "left", "h":
			if m.focusIndex == 1 {
				m.permIndex = (m.permIndex + len(model.Permissions) - 1) % len(model.Permissions)
				return m, nil
			}
		case "right", "l", " ":
			if m.focusIndex == 1 {
				m.permIndex = (m.permIndex + 1) % len(model.Permissions)
				return m, nil
			}
		}
	}

	if m.focusIndex != 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m createFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("create.title")))
	b.WriteString("\n")

	label := formItemStyle
	if m.focusIndex == 0 {
		label = formSelectedItemStyle
	}
	b.WriteString(label.Render(i18n.T("create.name_label")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	label = formItemStyle
	if m.focusIndex == 1 {
		label = formSelectedItemStyle
	}
	b.WriteString(label.Render(i18n.T("create.permission_label")))
	b.WriteString("\n")
	for i, p := range model.Permissions {
		text := i18n.T("create.permission." + string(p))
		if i == m.permIndex {
			b.WriteString(activeButtonStyle.MarginTop(0).Render(text))
		} else {
			b.WriteString(buttonStyle.MarginTop(0).Render(text))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n" + helpStyle.Render("\n"+i18n.T("create.help")))
	return dialogBoxStyle.Render(b.String())
}
