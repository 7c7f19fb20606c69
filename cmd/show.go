package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

// Show prints the stored record for an identifier, defaulting to the
// current profile when none is given.
func Show(ctx context.Context, opts StoreOptions, rawID string) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	rec, err := store.Load(ctx, rawID)
	if err != nil {
		HandleError(err)
	}
	if rec == nil {
		fmt.Println("no profile data")
		return
	}

	printRecord(rec)
}

func printRecord(rec *profile.Record) {
	fmt.Printf("name:    %s\n", rec.Name)
	if rec.Avatar != "" {
		fmt.Printf("avatar:  %s\n", rec.Avatar)
	}
	if rec.Age != "" {
		fmt.Printf("age:     %s\n", rec.Age)
	}
	if rec.Gender != "" {
		fmt.Printf("gender:  %s\n", rec.Gender)
	}
	if rec.Theme != "" {
		fmt.Printf("theme:   %s\n", rec.Theme)
	}
	if !rec.SavedAt.IsZero() {
		fmt.Printf("saved:   %s\n", rec.SavedAt.Format(time.RFC3339))
	}
}
