// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keydash using Cobra.
// It loads configuration, sets up logging and i18n, and either launches the
// dashboard TUI or prints the dashboard data as plain text.
package cli
