// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and the command handlers for
// modelport.
//
// Handlers return errors instead of exiting; main is the only place that
// terminates the process. Styled output degrades cleanly when stdout is
// not a terminal or NO_COLOR is set.
package cli
