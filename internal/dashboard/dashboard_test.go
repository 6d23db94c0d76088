// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package dashboard

import (
	"strings"
	"testing"

	"github.com/toeirei/keydash/internal/activity"
	"github.com/toeirei/keydash/internal/model"
)

func TestNew_DemoSeed(t *testing.T) {
	st := New(Options{Demo: true})
	d := st.Snapshot()
	keys := st.Keys.List()

	if len(keys) != 2 || keys[0].Name != "Production Key" || keys[1].ID != 2 {
		t.Fatalf("unexpected demo keys: %+v", keys)
	}
	for _, k := range keys {
		if !k.Hidden {
			t.Fatalf("demo key %d should start hidden", k.ID)
		}
	}
	if d.Stats.PointsQuota != 2500000 || d.Stats.RequestsToday != 152 {
		t.Fatalf("unexpected demo stats: %+v", d.Stats)
	}
	if len(d.Activity) != activity.DefaultMaxEntries {
		t.Fatalf("expected %d activity rows, got %d", activity.DefaultMaxEntries, len(d.Activity))
	}
	if d.WeekTotal != 1080 || d.ChartPeak != 210 {
		t.Fatalf("unexpected chart aggregates: total=%d peak=%d", d.WeekTotal, d.ChartPeak)
	}
	if d.FailedCount != 3 {
		t.Fatalf("expected 3 failed requests in demo feed, got %d", d.FailedCount)
	}
}

func TestNew_Empty(t *testing.T) {
	st := New(Options{})
	d := st.Snapshot()
	if st.Keys.Len() != 0 || len(d.Activity) != 0 {
		t.Fatalf("expected empty state, got %+v", d)
	}
	if len(d.Chart) != 7 || d.WeekTotal != 0 {
		t.Fatalf("expected seven zero chart points, got %+v", d.Chart)
	}
}

func TestNew_CreateAfterSeedGetsFreshID(t *testing.T) {
	st := New(Options{Demo: true})
	k := st.Keys.Create("new", model.PermissionRead)
	if k.ID == 1 || k.ID == 2 {
		t.Fatalf("new key reused a demo id: %d", k.ID)
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	st := New(Options{Demo: true})
	d := st.Snapshot()
	d.Chart[0].Value = 9999
	d.Activity[0].Points = 9999
	again := st.Snapshot()
	if again.Chart[0].Value == 9999 || again.Activity[0].Points == 9999 {
		t.Fatalf("snapshot shares memory with state")
	}
}

func TestSamples(t *testing.T) {
	s := Samples()
	if len(s) != 2 {
		t.Fatalf("expected two samples, got %d", len(s))
	}
	for _, sample := range s {
		if strings.Contains(sample.Code, "{{base}}") || !strings.Contains(sample.Code, BaseURL) {
			t.Fatalf("sample not expanded: %q", sample.Code)
		}
	}
}
