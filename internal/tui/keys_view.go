// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/model"
)

// dateLayout matches the "Jul 10, 2025" style of the dashboard.
const dateLayout = "Jan 2, 2006"

// formatDate renders a creation date for the key list.
func formatDate(k model.APIKey) string {
	if k.Created.IsZero() {
		return "-"
	}
	return k.Created.Format(dateLayout)
}

// renderKeyList draws the key pane from a snapshot. Each key shows its
// masked or full value depending on Hidden, the meta line and the actions
// available on it. cursor marks the selected key; pass -1 for none.
func renderKeyList(keys []model.APIKey, cursor int, width int) string {
	if len(keys) == 0 {
		return helpStyle.Render(i18n.T("keys.empty"))
	}

	var rows []string
	for i, k := range keys {
		marker := "  "
		valueStyle := keyValueStyle
		if i == cursor {
			marker = "▸ "
			valueStyle = keyValueStyle.Foreground(colorHighlight)
		}

		value := valueStyle.Render(k.Visible())
		meta := helpStyle.Render(i18n.T("keys.meta", k.Name, formatDate(k), string(k.Status)))
		perm := helpStyle.Render(i18n.T("keys.permission", string(k.Permissions)))

		toggle := i18n.T("keys.action_show")
		if !k.Hidden {
			toggle = i18n.T("keys.action_hide")
		}
		actions := fmt.Sprintf("[v] %s  [c] %s  [d] %s", toggle, i18n.T("keys.action_copy"), i18n.T("keys.action_revoke"))
		if i == cursor {
			actions = selectedItemStyle.Render(actions)
		} else {
			actions = helpStyle.Render(actions)
		}

		block := lipgloss.JoinVertical(lipgloss.Left,
			marker+value,
			"  "+meta,
			"  "+perm,
			"  "+actions,
		)
		if width > 0 {
			block = lipgloss.NewStyle().MaxWidth(width).Render(block)
		}
		rows = append(rows, block)
	}
	return strings.Join(rows, "\n\n")
}
