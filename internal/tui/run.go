// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keydash/internal/activity"
	"github.com/toeirei/keydash/internal/dashboard"
	"github.com/toeirei/keydash/internal/logging"
)

// RunOptions configure a TUI session.
type RunOptions struct {
	Options
	// Simulate starts the background activity updater.
	Simulate bool
	Interval time.Duration
}

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled. The activity updater, when enabled, only posts ticks to the
// program; the feed is changed inside Update.
func Run(ctx context.Context, st *dashboard.State, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Simulate && opts.Simulator == nil {
		opts.Simulator = activity.NewSimulator(nil)
	}
	p := tea.NewProgram(NewModel(st, opts.Options), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Simulate {
		logging.Debugf("activity updater running every %s", opts.Interval)
		go activity.Run(ctx, opts.Interval, func(at time.Time) {
			p.Send(activityTickMsg{at: at})
		})
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
