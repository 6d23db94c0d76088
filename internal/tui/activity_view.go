// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/model"
)

// renderStats draws the three stat cards side by side.
func renderStats(s model.UsageStats, width int) string {
	cardWidth := (width - 6) / 3
	if cardWidth < 22 {
		cardWidth = 22
	}
	card := func(number, label, extra string) string {
		body := lipgloss.JoinVertical(lipgloss.Left,
			statNumberStyle.Render(number),
			statLabelStyle.Render(label),
		)
		if extra != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(extra))
		}
		return paneStyle.Width(cardWidth).Render(body)
	}

	quota := i18n.T("stats.points_of_quota", i18n.FormatNumber(s.PointsQuota), s.QuotaPercent())
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(i18n.FormatNumber(s.RequestsToday), i18n.T("stats.requests_today"), ""),
		" ",
		card(i18n.FormatNumber(s.RequestsMonth), i18n.T("stats.requests_month"), ""),
		" ",
		card(i18n.FormatNumber(s.PointsUsed), i18n.T("stats.points_used"), quota),
	)
}

// activityTable builds the recent-activity table from a snapshot.
func activityTable(entries []model.Activity) table.Model {
	columns := []table.Column{
		{Title: i18n.T("activity.col_time"), Width: 6},
		{Title: i18n.T("activity.col_endpoint"), Width: 22},
		{Title: i18n.T("activity.col_status"), Width: 6},
		{Title: i18n.T("activity.col_points"), Width: 6},
	}
	rows := make([]table.Row, 0, len(entries))
	for _, a := range entries {
		rows = append(rows, table.Row{a.Time, a.Endpoint, strconv.Itoa(a.Status), strconv.Itoa(a.Points)})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in this table; keep rows unhighlighted.
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
	t.Blur()
	return t
}

// renderActivity draws the activity pane body.
func renderActivity(entries []model.Activity) string {
	if len(entries) == 0 {
		return helpStyle.Render(i18n.T("activity.empty"))
	}
	return activityTable(entries).View()
}

// activitySummary is the one-line status tally shown under the table.
func activitySummary(entries []model.Activity, failed int) string {
	ok := len(entries) - failed
	return lipgloss.JoinHorizontal(lipgloss.Left,
		statusStyle(200).Render(fmt.Sprintf("%d× 2xx", ok)),
		"  ",
		statusStyle(401).Render(fmt.Sprintf("%d× 4xx", failed)),
	)
}
