// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keystore

import (
	"crypto/rand"
	"io"
	"strings"
	"time"

	"github.com/toeirei/keydash/internal/logging"
	"github.com/toeirei/keydash/internal/model"
	"github.com/toeirei/keydash/internal/security"
)

// DefaultName is the label given to keys created without one.
const DefaultName = "Unnamed Key"

// Store is the in-memory owner of the API key list.
type Store struct {
	keys     []model.APIKey
	nextID   int64
	now      func() time.Time
	random   io.Reader
	onChange func([]model.APIKey)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, which drives creation dates and id seeding.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRandom replaces crypto/rand as the source for generated key values.
func WithRandom(r io.Reader) Option {
	return func(s *Store) { s.random = r }
}

// WithOnChange registers the render hook. It receives a fresh snapshot after
// every successful mutation.
func WithOnChange(fn func([]model.APIKey)) Option {
	return func(s *Store) { s.onChange = fn }
}

// OnChange replaces the render hook after construction, for views that are
// built after the store they display.
func (s *Store) OnChange(fn func([]model.APIKey)) {
	s.onChange = fn
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads pre-existing records, e.g. the demo keys shown on first start.
// Records whose id is already present are skipped. The id counter is moved
// past every seeded id so later creates never collide with them.
func (s *Store) Seed(records ...model.APIKey) {
	for _, r := range records {
		if s.indexOf(r.ID) != -1 {
			logging.Warnf("keystore: skipping seeded key with duplicate id %d", r.ID)
			continue
		}
		if r.Status == "" {
			r.Status = model.KeyStatusActive
		}
		if r.Permissions == "" {
			r.Permissions = model.DefaultPermission
		}
		if r.DisplayKey == "" {
			r.DisplayKey = maskSecret(r.SecretKey)
		}
		s.keys = append(s.keys, r.Clone())
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
}

// Create generates a new key, appends it hidden and returns a copy.
func (s *Store) Create(name string, perm model.Permission) model.APIKey {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if perm == "" {
		perm = model.DefaultPermission
	}

	now := s.now()
	secret := generateSecret(s.random)
	key := model.APIKey{
		ID:          s.allocateID(now),
		DisplayKey:  maskSecret(secret),
		SecretKey:   secret,
		Created:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:      model.KeyStatusActive,
		Name:        name,
		Permissions: perm,
		Hidden:      true,
	}
	s.keys = append(s.keys, key)
	logging.Debugf("keystore: created key %d (%s, %s)", key.ID, key.Name, key.Permissions)
	s.changed()
	return key.Clone()
}

// allocateID hands out time-based ids that never repeat: the current Unix
// millisecond, bumped past the last id handed out when the clock has not
// moved on.
func (s *Store) allocateID(now time.Time) int64 {
	id := now.UnixMilli()
	if id < s.nextID {
		id = s.nextID
	}
	s.nextID = id + 1
	return id
}

// Revoke removes the key with the given id. It reports whether a key was
// removed; a missing id leaves the list untouched. Confirming the action
// with the user is the caller's job.
func (s *Store) Revoke(id int64) bool {
	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	s.keys[i].SecretKey.Zero()
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	logging.Debugf("keystore: revoked key %d", id)
	s.changed()
	return true
}

// ToggleVisibility flips the hidden flag of the key with the given id and
// reports whether the key was found.
func (s *Store) ToggleVisibility(id int64) bool {
	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	s.keys[i].Hidden = !s.keys[i].Hidden
	s.changed()
	return true
}

// Reveal returns the full key value regardless of the hidden flag, so copying
// works while the key is masked on screen.
func (s *Store) Reveal(id int64) (security.Secret, bool) {
	i := s.indexOf(id)
	if i == -1 {
		return nil, false
	}
	return s.keys[i].SecretKey.Clone(), true
}

// Get returns a copy of the key with the given id.
func (s *Store) Get(id int64) (model.APIKey, bool) {
	i := s.indexOf(id)
	if i == -1 {
		return model.APIKey{}, false
	}
	return s.keys[i].Clone(), true
}

// List returns a snapshot of all keys in insertion order. Changing the
// snapshot does not affect the store.
func (s *Store) List() []model.APIKey {
	out := make([]model.APIKey, len(s.keys))
	for i, k := range s.keys {
		out[i] = k.Clone()
	}
	return out
}

// Len returns the number of keys.
func (s *Store) Len() int { return len(s.keys) }

func (s *Store) indexOf(id int64) int {
	for i := range s.keys {
		if s.keys[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange(s.List())
	}
}
