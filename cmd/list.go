package cmd

import "fmt"

// List prints every stored profile identifier, marking the active one.
func List(opts StoreOptions) {
	store, closer, err := OpenStore(opts)
	if err != nil {
		HandleError(err)
	}
	defer closer()
	defer store.Destroy()

	ids, err := store.List()
	if err != nil {
		HandleError(err)
	}
	if len(ids) == 0 {
		fmt.Println("no profiles")
		return
	}

	current := store.CurrentProfile()
	for _, id := range ids {
		marker := " "
		if id == current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, id)
	}
}
