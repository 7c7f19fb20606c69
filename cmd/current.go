package cmd

import "fmt"

// Current prints the identifier of the active profile.
func Current(opts StoreOptions) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	current := store.CurrentProfile()
	if current == "" {
		fmt.Println("no current profile")
		return
	}
	fmt.Println(current)
}
