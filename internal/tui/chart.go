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

// eighths are the partial block glyphs, from 1/8 to a full cell.
var eighths = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const chartColumnWidth = 5

// renderChart draws the weekly usage as columns `height` rows tall, with
// each day's value and label underneath. Values are scaled to peak.
func renderChart(points []model.ChartPoint, peak, height int) string {
	if height < 1 {
		height = 1
	}

	// levels[i] is the column height of point i in eighths of a row.
	levels := make([]int, len(points))
	for i, p := range points {
		if peak > 0 && p.Value > 0 {
			levels[i] = min(p.Value*height*8/peak, height*8)
			if levels[i] == 0 {
				levels[i] = 1
			}
		}
	}

	bar := lipgloss.NewStyle().Foreground(colorHighlight)
	cell := func(s string) string {
		return lipgloss.PlaceHorizontal(chartColumnWidth, lipgloss.Center, s)
	}

	var lines []string
	for row := height - 1; row >= 0; row-- {
		var b strings.Builder
		for _, lvl := range levels {
			switch {
			case lvl >= (row+1)*8:
				b.WriteString(cell(bar.Render("██")))
			case lvl > row*8:
				g := eighths[lvl-row*8-1]
				b.WriteString(cell(bar.Render(g + g)))
			default:
				b.WriteString(cell(""))
			}
		}
		lines = append(lines, b.String())
	}

	var values, labels strings.Builder
	for _, p := range points {
		values.WriteString(cell(helpStyle.Render(fmt.Sprintf("%d", p.Value))))
		labels.WriteString(cell(i18n.T("chart.day." + p.Label)))
	}
	lines = append(lines, values.String(), labels.String())
	return strings.Join(lines, "\n")
}
