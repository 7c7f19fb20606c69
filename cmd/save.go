package cmd

import (
	"context"
	"fmt"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

// Save encrypts and stores a profile record. An empty identifier falls back
// to the record's name, so "save --name Rowan" lands under "rowan".
func Save(ctx context.Context, opts StoreOptions, rawID string, rec profile.Record) {
	if rawID == "" {
		rawID = rec.Name
	}

	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	if err := store.Save(ctx, rawID, rec); err != nil {
		HandleError(err)
	}

	fmt.Printf("saved: %s\n", profile.Normalize(rawID))
}
