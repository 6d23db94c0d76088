// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/model"
)

// revokeKeyMsg asks the dashboard to revoke the key with the given id.
type revokeKeyMsg struct{ id int64 }

// confirmRevokeModel is the "are you sure" dialog shown before a revoke.
type confirmRevokeModel struct {
	key    model.APIKey
	cursor int // 0 for No, 1 for Yes
}

func newConfirmRevokeModel(k model.APIKey) confirmRevokeModel {
	return confirmRevokeModel{key: k} // default to No
}

func (m confirmRevokeModel) Update(msg tea.Msg) (confirmRevokeModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	id := m.key.ID
	switch km.String() {
	case "y":
		return m, func() tea.Msg { return revokeKeyMsg{id: id} }
	case "n", "q", "esc":
		return m, func() tea.Msg { return closeModalMsg{} }
	case "right", "tab", "l":
		m.cursor = 1
	case "left", "shift+tab", "h":
		m.cursor = 0
	case "enter":
		if m.cursor == 1 {
			return m, func() tea.Msg { return revokeKeyMsg{id: id} }
		}
		return m, func() tea.Msg { return closeModalMsg{} }
	}
	return m, nil
}

func (m confirmRevokeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("revoke.title")))
	b.WriteString("\n")
	b.WriteString(i18n.T("revoke.question"))
	b.WriteString("\n\n")
	b.WriteString(keyValueStyle.Render(m.key.Name) + "  " + helpStyle.Render(m.key.DisplayKey))
	b.WriteString("\n")

	yes := buttonStyle.Render(i18n.T("revoke.yes"))
	no := activeButtonStyle.Render(i18n.T("revoke.no"))
	if m.cursor == 1 {
		yes = dangerButtonStyle.Render(i18n.T("revoke.yes"))
		no = buttonStyle.Render(i18n.T("revoke.no"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, no, "  ", yes))
	b.WriteString("\n" + helpStyle.Render("\n"+i18n.T("revoke.help")))
	return dialogBoxStyle.Render(b.String())
}
