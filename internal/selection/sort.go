// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sort.go - Sort keys for the picker columns.
//
// `ollama list` reports size and recency as display text ("4.7 GB",
// "2 months ago"), so the picker parses them back into numbers to sort
// sensibly instead of lexically.

package selection

import (
	"strconv"
	"strings"
)

// =============================================================================
// SIZE PARSING
// =============================================================================

var sizeUnits = map[string]float64{
	"b":  1,
	"kb": 1e3,
	"mb": 1e6,
	"gb": 1e9,
	"tb": 1e12,
}

// SizeBytes parses a human-readable size ("4.7 GB") into bytes. Unparseable
// text sorts as zero.
func SizeBytes(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	unit, ok := sizeUnits[strings.ToLower(fields[1])]
	if !ok {
		return 0
	}
	return value * unit
}

// =============================================================================
// RECENCY PARSING
// =============================================================================

var recencySeconds = map[string]float64{
	"second": 1,
	"minute": 60,
	"hour":   3600,
	"day":    86400,
	"week":   7 * 86400,
	"month":  30 * 86400,
	"year":   365 * 86400,
}

// RecencyAge converts recency text ("2 months ago", "About an hour ago")
// into approximate seconds of age. Smaller is more recent. Unparseable text
// sorts as oldest.
func RecencyAge(s string) float64 {
	fields := strings.Fields(strings.ToLower(s))

	count := 1.0
	unit := ""
	for _, f := range fields {
		if n, err := strconv.ParseFloat(f, 64); err == nil {
			count = n
			continue
		}
		singular := strings.TrimSuffix(f, "s")
		if _, ok := recencySeconds[singular]; ok {
			unit = singular
		}
	}
	if unit == "" {
		return 1e18
	}
	return count * recencySeconds[unit]
}
