// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the data structures shown on the dashboard: API key
// records, activity entries and usage statistics.
package model // import "github.com/toeirei/keydash/internal/model"

import (
	"time"

	"github.com/toeirei/keydash/internal/security"
)

// KeyStatus is the lifecycle status of an API key. Only KeyStatusActive is
// produced today.
type KeyStatus string

const (
	KeyStatusActive KeyStatus = "active"
)

// Permission is the access level requested when a key is created. It is
// stored with the key but not interpreted anywhere.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
	PermissionAdmin Permission = "admin"
)

// DefaultPermission is used when the create dialog leaves the level empty.
const DefaultPermission = PermissionRead

// Permissions lists the selectable levels in display order.
var Permissions = []Permission{PermissionRead, PermissionWrite, PermissionAdmin}

// APIKey is a single API key record as owned by the key store.
type APIKey struct {
	ID          int64           // Unique, never reused.
	DisplayKey  string          // Masked form, e.g. "sk-****abcd".
	SecretKey   security.Secret // Full value.
	Created     time.Time       // Calendar date the key was created.
	Status      KeyStatus
	Name        string
	Permissions Permission
	Hidden      bool // Whether the view shows DisplayKey instead of SecretKey.
}

// Visible returns the value the view should show for the key right now.
func (k APIKey) Visible() string {
	if k.Hidden {
		return k.DisplayKey
	}
	return k.SecretKey.Reveal()
}

// Clone returns a deep copy of the record.
func (k APIKey) Clone() APIKey {
	k.SecretKey = k.SecretKey.Clone()
	return k
}
