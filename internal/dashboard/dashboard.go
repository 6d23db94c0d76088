// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package dashboard

import (
	"github.com/toeirei/keydash/internal/activity"
	"github.com/toeirei/keydash/internal/keystore"
	"github.com/toeirei/keydash/internal/model"
	"github.com/toeirei/keydash/util/slicest"
)

// Options control how a State is built.
type Options struct {
	Demo        bool // seed the demo keys, stats, activity and chart
	MaxEntries  int  // activity feed cap
	StoreOption []keystore.Option
}

// State is everything the dashboard shows. It is created once and owned by
// the UI loop; there is no package-level instance.
type State struct {
	Keys  *keystore.Store
	Feed  *activity.Feed
	Chart []model.ChartPoint
}

// New builds a State, seeded with demo data when opts.Demo is set.
func New(opts Options) *State {
	st := &State{Keys: keystore.New(opts.StoreOption...)}
	if !opts.Demo {
		st.Feed = activity.NewFeed(opts.MaxEntries, model.UsageStats{})
		st.Chart = slicest.Map(demoChart(), func(p model.ChartPoint) model.ChartPoint {
			p.Value = 0
			return p
		})
		return st
	}
	st.Keys.Seed(demoKeys()...)
	st.Feed = activity.NewFeed(opts.MaxEntries, demoStats(), demoActivity()...)
	st.Chart = demoChart()
	return st
}

// Data is an immutable snapshot of a State, ready to render.
type Data struct {
	Stats       model.UsageStats
	Activity    []model.Activity
	Chart       []model.ChartPoint
	WeekTotal   int
	ChartPeak   int
	FailedCount int // failed requests among the recent activity rows
}

// Snapshot collects the current feed and chart into a Data value. Keys are
// not part of it; the UI tracks them through the store's change hook.
func (s *State) Snapshot() Data {
	var d Data
	d.Stats = s.Feed.Stats()
	d.Activity = s.Feed.Entries()
	d.Chart = append([]model.ChartPoint(nil), s.Chart...)
	d.WeekTotal = slicest.ReduceD(d.Chart, 0, func(p model.ChartPoint, acc int) int { return acc + p.Value })
	d.ChartPeak = slicest.MaxBy(d.Chart, func(p model.ChartPoint) int { return p.Value })
	d.FailedCount = len(slicest.Filter(d.Activity, func(a model.Activity) bool { return !a.Succeeded() }))
	return d
}
