// Package storage defines the flat string key-value primitive the profile
// store persists into, plus its backends:
//
//   - bbolt: single-bucket file database, the default kiosk backend
//   - sqlite: single upsert table, for hosts that already carry SQLite
//   - keyring: OS keyring entries, one secret per key
//   - memory: map-backed store for tests and callers that inject their own
//
// Values are opaque text; encryption happens above this layer. The store
// is shared with unrelated application state, so every consumer must stay
// inside its own key namespace.
package storage
