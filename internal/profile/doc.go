// Package profile implements the encrypted profile store for the school
// kiosk: per-student records encrypted at rest in a flat key-value backend,
// addressed by a normalized identifier, with a pointer to the most recently
// active profile.
//
// Persisted layout (string entries in the injected backend):
//
//	waw:current-profile       normalized identifier of the active profile
//	waw:profile:<identifier>  base64 of nonce ‖ ciphertext ‖ tag
//
// The pointer shares the application prefix but sits outside the
// profile-data keyspace, so no profile name can collide with it. The data
// entry and the pointer are two independent writes with no atomicity across
// them; a crash between the two leaves the pointer referencing a profile
// whose load simply reports no data.
//
// Identifiers come from free, user-entered text and are disambiguated only
// by trimming and case folding: two students who both type "Sam" share one
// profile.
package profile
