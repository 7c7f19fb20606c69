package cmd

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/crypto"
	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/storage"
)

// DefaultStorePath is the bbolt database created in the working directory
// when no --db flag is given.
const DefaultStorePath = ".profiles"

// StoreOptions selects the key-value backend and encryption passphrase for
// one command invocation.
type StoreOptions struct {
	Backend string // "bolt", "sqlite" or "keyring"
	Path    string // database path for file-backed backends
	AskPass bool   // prompt for a passphrase instead of the embedded one
}

// OpenStore builds the profile store for opts. The returned closer
// releases the backend and must be called when the command is done.
func OpenStore(opts StoreOptions) (*profile.Store, func(), error) {
	var (
		kv     storage.Store
		closer func()
	)

	switch opts.Backend {
	case "", "bolt":
		path := opts.Path
		if path == "" {
			path = DefaultStorePath
		}
		st, err := storage.OpenBolt(path)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = st, func() { st.Close() }
	case "sqlite":
		path := opts.Path
		if path == "" {
			path = DefaultStorePath + ".db"
		}
		st, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = st, func() { st.Close() }
	case "keyring":
		kv, closer = storage.NewKeyring(""), func() {}
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}

	key, err := resolveKey(opts)
	if err != nil {
		closer()
		return nil, nil, err
	}

	return profile.NewWithKey(kv, key), closer, nil
}

// resolveKey picks the encryption key: --ask-pass prompts, the
// WAW_PASSPHRASE environment variable overrides, and the embedded
// passphrase is the default.
func resolveKey(opts StoreOptions) ([]byte, error) {
	if opts.AskPass {
		pass, err := ReadPassphrase("Enter passphrase: ")
		if err != nil {
			return nil, err
		}
		defer crypto.ClearBytes(pass)
		return crypto.DeriveKeyFrom(pass), nil
	}
	if pass := os.Getenv("WAW_PASSPHRASE"); pass != "" {
		return crypto.DeriveKeyFrom([]byte(pass)), nil
	}
	return crypto.DeriveKey(), nil
}

// ReadPassphrase reads a passphrase from the terminal without echoing.
// The caller is responsible for calling crypto.ClearBytes on the result.
func ReadPassphrase(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return pass, nil
}

// HandleError reports common errors consistently and exits.
func HandleError(err error) {
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		fmt.Fprintf(os.Stderr, "Error: profile storage is unavailable\n")
		fmt.Fprintf(os.Stderr, "%s\n", err)
	case errors.Is(err, crypto.ErrCryptoUnavailable):
		fmt.Fprintf(os.Stderr, "Error: encryption is unavailable on this platform\n")
		fmt.Fprintf(os.Stderr, "%s\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
