// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Yes/no confirmation before any files are copied.
//
// One pattern for every destructive-ish step:
//  1. --yes skips the prompt entirely
//  2. a non-TTY stdin without --yes is an error (can't prompt)
//  3. otherwise prompt, looping until a recognized answer

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrConfirmationRequired is returned when a confirmation is needed but
// stdin is not a terminal and --yes was not given.
var ErrConfirmationRequired = errors.New("confirmation required: re-run with --yes (stdin is not a terminal)")

// AskYesNo prompts until it reads y/yes/n/no (case-insensitive), repeating
// the prompt on anything else. EOF counts as "no".
func AskYesNo(in io.Reader, out io.Writer, prompt string) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read answer: %w", err)
			}
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(out, "Please enter 'y' or 'n'.")
		}
	}
}
