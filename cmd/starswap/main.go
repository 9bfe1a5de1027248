// Command starswap sorts a fully-connected star graph's input permutation
// to a target permutation via centre-centre and centre-leaf swaps, either
// interactively (keys e, m, s, l, h, c) or in one non-interactive shot via
// flags, for use in CI.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("starswap: %v", err)
	}
}
