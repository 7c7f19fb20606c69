package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	KeySize    = 32     // AES-256 key size
	NonceSize  = 12     // GCM nonce size
	TagSize    = 16     // GCM authentication tag size
	Iterations = 100000 // PBKDF2 iterations, part of the fixed derivation inputs
)

// Fixed derivation inputs. Every kiosk derives the same key, so profiles
// survive reinstalls and any copy of the binary can read any store.
const (
	defaultPassphrase = "witchcraft-and-wizardry-profile-key"
	derivationSalt    = "waw-profile-salt-v1"
)

var (
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrCryptoUnavailable = errors.New("crypto unavailable")
)

// DeriveKey stretches the embedded passphrase into the store's encryption
// key. Pure function of fixed inputs: the same key on every call.
func DeriveKey() []byte {
	return DeriveKeyFrom([]byte(defaultPassphrase))
}

// DeriveKeyFrom stretches a caller-supplied passphrase with the same salt
// and parameters as DeriveKey, for deployments that configure their own.
func DeriveKeyFrom(passphrase []byte) []byte {
	return pbkdf2.Key(passphrase, []byte(derivationSalt), Iterations, KeySize, sha256.New)
}

// Encryptor provides authenticated encryption
type Encryptor struct {
	key []byte
}

// NewEncryptor creates a new encryptor with the given key
func NewEncryptor(key []byte) *Encryptor {
	return &Encryptor{
		key: key,
	}
}

// Encrypt encrypts plaintext using AES-256-GCM and returns
// nonce ‖ ciphertext ‖ tag as a single blob.
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := e.aead()
	if err != nil {
		return nil, err
	}

	// Generate random nonce
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %v", ErrCryptoUnavailable, err)
	}

	// Encrypt and authenticate
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	// Prepend nonce to ciphertext
	result := make([]byte, NonceSize+len(ciphertext))
	copy(result, nonce)
	copy(result[NonceSize:], ciphertext)

	return result, nil
}

// Decrypt splits the leading nonce off blob and decrypts the remainder.
// Returns ErrInvalidCiphertext when the blob is too short to carry a nonce
// and tag, and ErrAuthFailed when the tag does not verify.
func (e *Encryptor) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, ErrInvalidCiphertext
	}

	gcm, err := e.aead()
	if err != nil {
		return nil, err
	}

	nonce := blob[:NonceSize]
	ciphertext := blob[NonceSize:]

	// Decrypt and verify
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}

func (e *Encryptor) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %v", ErrCryptoUnavailable, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: creating GCM: %v", ErrCryptoUnavailable, err)
	}
	return gcm, nil
}

// Destroy clears the encryptor's key from memory
func (e *Encryptor) Destroy() {
	ClearBytes(e.key)
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
