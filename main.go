// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keydash.
//
// Usage:
//
//	go run . [flags]
//	./keydash [flags]
//
// This launches the Keydash CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keydash/internal/logging"
	"github.com/toeirei/keydash/ui/cli"
)

// main is the entrypoint for the Keydash CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("keydash: %v", err)
		os.Exit(1)
	}
}
