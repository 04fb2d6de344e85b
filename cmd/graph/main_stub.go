//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of wavegraph requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/graph` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless tools: ./cmd/graph-dump and ./cmd/graph-sweep.")
	os.Exit(2)
}
