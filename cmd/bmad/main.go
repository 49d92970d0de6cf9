// SPDX-License-Identifier: MIT

// Package main implements bmad, a command-line front end for boolean matrix
// decomposition label compression.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
