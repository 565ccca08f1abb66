// SPDX-License-Identifier: MIT

// Command elv counts edge length vectors of circulant graphs and builds
// optimal circulant-TSP tours for n = p³.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
