//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lunar-rover requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/rover` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless terrain report use `go run ./cmd/rover-sweep`.")
	os.Exit(2)
}
