// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package selection presents the model inventory and returns the subset of
// model names the user picked.
//
// Two interchangeable implementations exist behind the Selector interface:
//
//   - Prompt: a line-mode numeric prompt (works everywhere, including
//     Windows consoles and non-interactive pipes fed a script)
//   - Picker: a full-screen bubbletea table with per-column sorting
//
// The orchestrator chooses which one to construct; neither implementation
// inspects the platform itself. An empty result means "cancelled / nothing
// selected" in both variants and is not an error.
package selection
