// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package activity

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/toeirei/keydash/internal/model"
)

func TestFeed_PrependKeepsNewestFirstAndCaps(t *testing.T) {
	f := NewFeed(3, model.UsageStats{})
	for i := 1; i <= 5; i++ {
		f.Prepend(model.Activity{Points: i})
	}
	got := f.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Points != 5 || got[2].Points != 3 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestNewFeed_DefaultCapAndInitialTruncate(t *testing.T) {
	initial := make([]model.Activity, 15)
	f := NewFeed(0, model.UsageStats{}, initial...)
	if len(f.Entries()) != DefaultMaxEntries {
		t.Fatalf("expected %d entries, got %d", DefaultMaxEntries, len(f.Entries()))
	}
}

func TestFeed_EntriesIsCopy(t *testing.T) {
	f := NewFeed(2, model.UsageStats{}, model.Activity{Endpoint: EndpointChat})
	e := f.Entries()
	e[0].Endpoint = "changed"
	if f.Entries()[0].Endpoint != EndpointChat {
		t.Fatalf("feed changed through returned slice")
	}
}

func TestFeed_Apply(t *testing.T) {
	f := NewFeed(10, model.UsageStats{RequestsToday: 152, RequestsMonth: 2800, PointsUsed: 100})
	f.Apply(Event{ExtraRequests: 2})
	f.Apply(Event{ExtraRequests: 1, Entry: &model.Activity{Endpoint: EndpointModels, Status: 200, Points: 5}})

	s := f.Stats()
	if s.RequestsToday != 155 || s.RequestsMonth != 2803 {
		t.Fatalf("unexpected request counters: %+v", s)
	}
	if s.PointsUsed != 105 {
		t.Fatalf("expected points to grow by entry points, got %d", s.PointsUsed)
	}
	if len(f.Entries()) != 1 {
		t.Fatalf("expected entry to be prepended")
	}
}

func TestSimulator_StepRanges(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewPCG(1, 2)))
	at := time.Date(2025, 7, 25, 9, 5, 0, 0, time.UTC)

	const steps = 5000
	var entries int
	for i := 0; i < steps; i++ {
		ev := sim.Step(at)
		if ev.ExtraRequests < 0 || ev.ExtraRequests > 2 {
			t.Fatalf("extra requests out of range: %d", ev.ExtraRequests)
		}
		if ev.Entry == nil {
			continue
		}
		entries++
		e := ev.Entry
		if e.Time != "09:05" {
			t.Fatalf("unexpected time %q", e.Time)
		}
		switch e.Status {
		case 200:
			if e.Endpoint == EndpointModels && (e.Points < 1 || e.Points > 10) {
				t.Fatalf("models points out of range: %d", e.Points)
			}
			if e.Endpoint == EndpointChat && (e.Points < 50 || e.Points > 349) {
				t.Fatalf("chat points out of range: %d", e.Points)
			}
		case 401, 429:
			if e.Points != 0 {
				t.Fatalf("failed request should cost nothing, got %d", e.Points)
			}
		default:
			t.Fatalf("unexpected status %d", e.Status)
		}
		if e.Endpoint != EndpointChat && e.Endpoint != EndpointModels {
			t.Fatalf("unexpected endpoint %q", e.Endpoint)
		}
	}
	// Roughly one tick in ten adds a row.
	if entries < steps/20 || entries > steps*3/20 {
		t.Fatalf("expected about 10%% of ticks to add entries, got %d of %d", entries, steps)
	}
}

func TestSimulator_DeterministicWithSameSeed(t *testing.T) {
	a := NewSimulator(rand.New(rand.NewPCG(7, 7)))
	b := NewSimulator(rand.New(rand.NewPCG(7, 7)))
	at := time.Now()
	for i := 0; i < 100; i++ {
		ea, eb := a.Step(at), b.Step(at)
		if ea.ExtraRequests != eb.ExtraRequests || (ea.Entry == nil) != (eb.Entry == nil) {
			t.Fatalf("simulators diverged at step %d", i)
		}
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks atomic.Int32
	done := make(chan struct{})
	go func() {
		Run(ctx, time.Millisecond, func(time.Time) {
			if ticks.Add(1) == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if ticks.Load() < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", ticks.Load())
	}
}
