package cmd

import (
	"fmt"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

// Clear removes the stored record for an identifier. With no identifier it
// clears the active profile and the current-profile pointer with it.
func Clear(opts StoreOptions, rawID string) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	if rawID == "" {
		current := store.CurrentProfile()
		if current == "" {
			fmt.Println("no active profile to clear")
			return
		}
		if err := store.Clear(""); err != nil {
			HandleError(err)
		}
		fmt.Printf("cleared: %s\n", current)
		return
	}

	if err := store.Clear(rawID); err != nil {
		HandleError(err)
	}
	fmt.Printf("cleared: %s\n", profile.Normalize(rawID))
}
