// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package activity holds the recent-activity feed and usage counters shown
// next to the key list, plus the optional simulator that makes them move.
package activity

import (
	"github.com/toeirei/keydash/internal/model"
)

// DefaultMaxEntries is how many rows the feed keeps.
const DefaultMaxEntries = 10

// Feed is the newest-first list of recent requests together with the usage
// counters. Like the key store it belongs to the UI loop and is not locked.
type Feed struct {
	entries []model.Activity
	stats   model.UsageStats
	max     int
}

// NewFeed creates a feed capped at max entries (DefaultMaxEntries when max <= 0).
func NewFeed(max int, stats model.UsageStats, entries ...model.Activity) *Feed {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	f := &Feed{stats: stats, max: max}
	f.entries = append(f.entries, entries...)
	f.truncate()
	return f
}

// Prepend adds a as the newest entry and drops the oldest ones beyond the cap.
func (f *Feed) Prepend(a model.Activity) {
	f.entries = append([]model.Activity{a}, f.entries...)
	f.truncate()
}

// Entries returns a copy of the feed, newest first.
func (f *Feed) Entries() []model.Activity {
	out := make([]model.Activity, len(f.entries))
	copy(out, f.entries)
	return out
}

// Stats returns the current usage counters.
func (f *Feed) Stats() model.UsageStats { return f.stats }

// Apply folds one simulator event into the feed.
func (f *Feed) Apply(ev Event) {
	f.stats.RequestsToday += ev.ExtraRequests
	f.stats.RequestsMonth += ev.ExtraRequests
	if ev.Entry != nil {
		f.stats.PointsUsed += ev.Entry.Points
		f.Prepend(*ev.Entry)
	}
}

func (f *Feed) truncate() {
	if len(f.entries) > f.max {
		f.entries = f.entries[:f.max]
	}
}
