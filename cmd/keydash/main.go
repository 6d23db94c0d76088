// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Command keydash is the installable binary:
//
//	go install github.com/toeirei/keydash/cmd/keydash@latest
package main

import (
	"os"

	"github.com/toeirei/keydash/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
