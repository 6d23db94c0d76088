// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 3 * time.Second

// toastExpiredMsg clears the toast with the same sequence number.
type toastExpiredMsg struct{ seq int }

// toast is a transient notification in the footer. Each new toast bumps
// seq, so the expiry of an older one does not clear a newer one.
type toast struct {
	text  string
	isErr bool
	seq   int
}

// show replaces the current toast and returns the command that expires it.
func (t *toast) show(text string, isErr bool, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultToastDuration
	}
	t.seq++
	t.text = text
	t.isErr = isErr
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

// expire clears the toast if msg belongs to it.
func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.text = ""
		t.isErr = false
	}
}

func (t toast) View() string {
	if t.text == "" {
		return ""
	}
	if t.isErr {
		return toastErrorStyle.Render(t.text)
	}
	return toastStyle.Render(t.text)
}
