// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Activity is one row of the recent-activity table.
type Activity struct {
	Time     string // HH:MM, 24h clock.
	Endpoint string
	Status   int // HTTP status code.
	Points   int
}

// Succeeded reports whether the request was answered with a 2xx status.
func (a Activity) Succeeded() bool {
	return a.Status >= 200 && a.Status < 300
}

// UsageStats holds the numbers shown on the stat cards.
type UsageStats struct {
	RequestsToday int
	RequestsMonth int
	PointsUsed    int
	PointsQuota   int
}

// QuotaPercent returns the share of the points quota already used, 0..100.
func (s UsageStats) QuotaPercent() float64 {
	if s.PointsQuota <= 0 {
		return 0
	}
	p := float64(s.PointsUsed) / float64(s.PointsQuota) * 100
	if p > 100 {
		return 100
	}
	return p
}

// ChartPoint is one labelled value of the usage chart.
type ChartPoint struct {
	Label string
	Value int
}
