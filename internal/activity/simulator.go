// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package activity

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/toeirei/keydash/internal/model"
)

const (
	EndpointChat   = "/v1/chat/completions"
	EndpointModels = "/v1/models"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = 5 * time.Second

// Event is the outcome of one simulator tick. Entry is nil on most ticks.
type Event struct {
	ExtraRequests int
	Entry         *model.Activity
}

// Simulator produces synthetic traffic. It only computes events; applying
// them to a Feed is left to the owner of the feed.
type Simulator struct {
	rng        *rand.Rand
	newEntryP  float64
	successP   float64
	maxRequest int
}

// NewSimulator creates a simulator driven by rng. A nil rng uses a
// time-seeded PCG source.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Simulator{
		rng:        rng,
		newEntryP:  0.1,
		successP:   0.8,
		maxRequest: 3,
	}
}

// Step computes the event for a tick at the given time: a few more requests
// today and, one time in ten, a new activity row.
func (s *Simulator) Step(at time.Time) Event {
	ev := Event{ExtraRequests: s.rng.IntN(s.maxRequest)}
	if s.rng.Float64() >= s.newEntryP {
		return ev
	}

	endpoint := EndpointChat
	if s.rng.IntN(2) == 1 {
		endpoint = EndpointModels
	}

	status := 200
	if s.rng.Float64() >= s.successP {
		if s.rng.Float64() < 0.5 {
			status = 401
		} else {
			status = 429
		}
	}

	points := s.rng.IntN(300) + 50
	if endpoint == EndpointModels {
		points = s.rng.IntN(10) + 1
	}
	if status != 200 {
		points = 0
	}

	ev.Entry = &model.Activity{
		Time:     at.Format("15:04"),
		Endpoint: endpoint,
		Status:   status,
		Points:   points,
	}
	return ev
}

// Run calls send with the tick time every interval until ctx is cancelled.
// send is expected to hand the tick to the UI loop (e.g. tea.Program.Send)
// rather than touching shared state itself.
func Run(ctx context.Context, interval time.Duration, send func(time.Time)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			send(t)
		}
	}
}
