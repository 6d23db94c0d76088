// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keystore owns the ordered, in-memory list of API key records and
// the operations that mutate it: create, revoke, toggle visibility and
// reveal. A Store is not safe for concurrent use; it is meant to be owned by
// the single UI event loop, which serialises every call.
package keystore
