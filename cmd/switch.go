package cmd

import (
	"fmt"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

// Switch makes an identifier the active profile without loading its data.
func Switch(opts StoreOptions, rawID string) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	if err := store.SwitchProfile(rawID); err != nil {
		HandleError(err)
	}
	fmt.Printf("current profile: %s\n", profile.Normalize(rawID))
}
