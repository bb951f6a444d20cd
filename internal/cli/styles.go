// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// ConfigureStyles sets the lipgloss color profile from the configured
// color mode. Called once from main before any output.
func ConfigureStyles(colorMode string) {
	lipgloss.SetColorProfile(GetColorProfile(colorMode))
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// SuccessStyle marks completed copies.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	// WarnStyle marks missing blobs in the preview.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	// ErrorStyle marks per-model failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	// DimStyle is used for secondary detail like paths.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray
)
