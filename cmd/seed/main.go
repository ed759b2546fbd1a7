// Command seed inspects the storefront seed dataset.
//
//	go run ./cmd/seed validate --file ./my-catalog.yaml
//	go run ./cmd/seed show --reviews
//	go run ./cmd/seed search --q backpack --sort price-low
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
