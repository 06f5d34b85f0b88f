// Command envcheck prints a diagnostic report of the Go environment.
package main

import (
	"fmt"
	"os"

	"github.com/agbru/coinsim/internal/envcheck"
)

func main() {
	if err := envcheck.Collect(nil).Write(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "envcheck: %v\n", err)
		os.Exit(1)
	}
}
