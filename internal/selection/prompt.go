// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line-mode numeric selection.

package selection

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/modelport/internal/inventory"
)

// =============================================================================
// NUMERIC PROMPT SELECTOR
// =============================================================================

// Prompt is the line-mode Selector. It renders a numbered table and asks
// for comma-separated row numbers, the word "all", or a blank line to
// cancel. Reader and writer are injected so tests can script the exchange.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompt creates a Prompt selector over the given streams.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out}
}

// Select implements Selector.
//
// Validation is all-or-nothing: if any token in one input line is not a
// number in [1, len(rows)], the entire line is rejected with a message and
// the prompt repeats. Explicit selections are returned in the order the
// user typed them, duplicates included; "all" returns the rows in listed
// order.
func (p *Prompt) Select(rows []inventory.Row) ([]string, error) {
	fmt.Fprintln(p.Out, "\nAvailable models:")
	fmt.Fprint(p.Out, FormatTable(rows, true))

	scanner := bufio.NewScanner(p.In)
	for {
		fmt.Fprint(p.Out, "\nSelect model number(s) (comma-separated, 'all' for all models, or press Enter to cancel): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read selection: %w", err)
			}
			return nil, nil // EOF counts as cancel
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return nil, nil
		}
		if strings.EqualFold(input, "all") {
			return inventory.Names(rows), nil
		}

		names, ok := p.parseChoices(input, rows)
		if ok {
			return names, nil
		}
	}
}

// parseChoices parses one input line into model names. Returns ok=false
// (after printing why) if any token is invalid; no partial acceptance.
func (p *Prompt) parseChoices(input string, rows []inventory.Row) ([]string, bool) {
	tokens := strings.Split(input, ",")
	names := make([]string, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintln(p.Out, "Please enter valid number(s) or 'all'.")
			return nil, false
		}
		if n < 1 || n > len(rows) {
			fmt.Fprintf(p.Out, "Invalid choice: %d. Try again.\n", n)
			return nil, false
		}
		names = append(names, rows[n-1].Name)
	}

	if len(names) == 0 {
		return nil, false
	}
	return names, true
}
