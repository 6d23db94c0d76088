// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keydash/internal/dashboard"
	"github.com/toeirei/keydash/internal/i18n"
)

// renderSamples draws the code samples pane as tabs with the selected
// sample's code below them.
func renderSamples(samples []dashboard.Sample, selected int, focused bool) string {
	if len(samples) == 0 {
		return ""
	}
	if selected < 0 || selected >= len(samples) {
		selected = 0
	}

	var tabs []string
	for i, s := range samples {
		title := i18n.T(s.TitleID)
		switch {
		case i == selected && focused:
			tabs = append(tabs, formSelectedItemStyle.Render("▸ "+title))
		case i == selected:
			tabs = append(tabs, formItemStyle.Bold(true).Render("  "+title))
		default:
			tabs = append(tabs, helpStyle.Render("  "+title))
		}
	}

	code := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(samples[selected].Code)
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(tabs, " "), "", code)
}
