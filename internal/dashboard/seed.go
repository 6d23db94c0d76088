// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dashboard wires the key store, the activity feed and the usage
// chart into one State owned by the UI, and builds the read-only Data
// snapshot the views render from.
package dashboard

import (
	"time"

	"github.com/toeirei/keydash/internal/model"
	"github.com/toeirei/keydash/internal/security"
)

// demoKeys are the keys shown on a fresh start.
func demoKeys() []model.APIKey {
	return []model.APIKey{
		{
			ID:          1,
			DisplayKey:  "sk-****abcd",
			SecretKey:   security.FromString("sk-1234567890abcdef1234567890abcdef"),
			Created:     time.Date(2025, 7, 10, 0, 0, 0, 0, time.Local),
			Status:      model.KeyStatusActive,
			Name:        "Production Key",
			Permissions: model.PermissionAdmin,
			Hidden:      true,
		},
		{
			ID:          2,
			DisplayKey:  "sk-****efgh",
			SecretKey:   security.FromString("sk-0987654321efgh0987654321efgh0987"),
			Created:     time.Date(2025, 7, 20, 0, 0, 0, 0, time.Local),
			Status:      model.KeyStatusActive,
			Name:        "Development Key",
			Permissions: model.PermissionWrite,
			Hidden:      true,
		},
	}
}

func demoStats() model.UsageStats {
	return model.UsageStats{
		RequestsToday: 152,
		RequestsMonth: 2800,
		PointsUsed:    1266763,
		PointsQuota:   2500000,
	}
}

func demoActivity() []model.Activity {
	return []model.Activity{
		{Time: "13:01", Endpoint: "/v1/chat/completions", Status: 200, Points: 200},
		{Time: "12:45", Endpoint: "/v1/chat/completions", Status: 401, Points: 0},
		{Time: "12:20", Endpoint: "/v1/chat/completions", Status: 429, Points: 0},
		{Time: "12:15", Endpoint: "/v1/chat/completions", Status: 200, Points: 180},
		{Time: "12:10", Endpoint: "/v1/models", Status: 200, Points: 5},
		{Time: "12:05", Endpoint: "/v1/chat/completions", Status: 200, Points: 220},
		{Time: "12:00", Endpoint: "/v1/chat/completions", Status: 200, Points: 150},
		{Time: "11:55", Endpoint: "/v1/chat/completions", Status: 429, Points: 0},
		{Time: "11:50", Endpoint: "/v1/chat/completions", Status: 200, Points: 190},
		{Time: "11:45", Endpoint: "/v1/models", Status: 200, Points: 5},
	}
}

// Weekday labels are i18n suffixes; the view resolves them as "chart.day.<label>".
func demoChart() []model.ChartPoint {
	return []model.ChartPoint{
		{Label: "mon", Value: 120},
		{Label: "tue", Value: 180},
		{Label: "wed", Value: 210},
		{Label: "thu", Value: 160},
		{Label: "fri", Value: 90},
		{Label: "sat", Value: 170},
		{Label: "sun", Value: 150},
	}
}
