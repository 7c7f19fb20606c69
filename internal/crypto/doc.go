// Package crypto provides the key derivation and authenticated encryption
// behind the profile store.
//
// Encryption uses AES-256-GCM with:
//   - 32-byte key derived via PBKDF2-HMAC-SHA256
//   - 12-byte random nonce per encryption operation
//   - Authenticated encryption prevents tampering
//
// Key derivation uses two fixed, code-embedded inputs (passphrase and salt)
// with 100,000 iterations, so every call produces the same key. The
// passphrase ships inside the binary: this protects stored bytes against
// casual inspection of the kiosk's persistent storage, not against anyone
// who can read this source. That posture is deliberate; do not mistake it
// for secrecy.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
//   - Call Encryptor.Destroy() when done with encryption operations
package crypto
