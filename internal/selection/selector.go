// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// selector.go - The Selector interface and shared table formatting.

package selection

import (
	"strconv"
	"strings"

	"github.com/jeranaias/modelport/internal/inventory"
	"github.com/jeranaias/modelport/internal/util"
)

// =============================================================================
// SELECTOR INTERFACE
// =============================================================================

// Selector presents rows to the user and returns the names of the chosen
// models. An empty slice means the user cancelled or selected nothing;
// callers treat that as a normal early exit.
type Selector interface {
	Select(rows []inventory.Row) ([]string, error)
}

// =============================================================================
// SHARED TABLE FORMATTING
// =============================================================================

// Column captions shared by both selector variants and the list command.
var tableHeader = [4]string{"Name", "ID", "Size", "Modified"}

// columnWidths computes per-column display widths from the data, clamped
// so pathological names cannot blow up the layout.
func columnWidths(rows []inventory.Row) [4]int {
	widths := [4]int{}
	for i, h := range tableHeader {
		widths[i] = util.CellWidth(h)
	}
	for _, row := range rows {
		cells := [4]string{row.Name, row.ID, row.Size, row.Modified}
		for i, cell := range cells {
			if w := util.CellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	const maxColumn = 40
	for i := range widths {
		if widths[i] > maxColumn {
			widths[i] = maxColumn
		}
	}
	return widths
}

// FormatTable renders the inventory as a fixed-width text table. When
// numbered is true each row is prefixed with its 1-based index, the form
// the numeric prompt asks the user to type.
func FormatTable(rows []inventory.Row, numbered bool) string {
	widths := columnWidths(rows)

	var b strings.Builder
	indexWidth := len(strconv.Itoa(len(rows)))
	if indexWidth < 2 {
		indexWidth = 2
	}

	writeRow := func(index string, cells [4]string) {
		if numbered {
			b.WriteString(util.PadCell(index, indexWidth))
			b.WriteString("  ")
		}
		for i, cell := range cells {
			b.WriteString(util.PadCell(cell, widths[i]))
			if i < len(cells)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow("#", tableHeader)

	total := indexWidth + 2
	if !numbered {
		total = 0
	}
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteString("\n")

	for i, row := range rows {
		writeRow(strconv.Itoa(i+1), [4]string{row.Name, row.ID, row.Size, row.Modified})
	}
	return b.String()
}
