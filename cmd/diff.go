package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

// Diff prints the difference between two stored profiles.
func Diff(ctx context.Context, opts StoreOptions, rawA, rawB string) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	recA, err := store.Load(ctx, rawA)
	if err != nil {
		HandleError(err)
	}
	recB, err := store.Load(ctx, rawB)
	if err != nil {
		HandleError(err)
	}

	if recA == nil {
		HandleError(fmt.Errorf("no profile data for %q", profile.Normalize(rawA)))
	}
	if recB == nil {
		HandleError(fmt.Errorf("no profile data for %q", profile.Normalize(rawB)))
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(renderForDiff(recA), renderForDiff(recB), false)
	fmt.Print(dmp.DiffPrettyText(diffs))
}

// renderForDiff leaves out SavedAt: it differs on almost every pair and
// would drown the real changes.
func renderForDiff(rec *profile.Record) string {
	out, err := json.MarshalIndent(struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar,omitempty"`
		Age    string `json:"age,omitempty"`
		Gender string `json:"gender,omitempty"`
		Theme  string `json:"theme,omitempty"`
	}{rec.Name, rec.Avatar, rec.Age, rec.Gender, rec.Theme}, "", "  ")
	if err != nil {
		return ""
	}
	return string(out) + "\n"
}
