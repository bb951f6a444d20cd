// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inventory.go - Running and parsing `ollama list`.

package inventory

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sort"
	"strings"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ReaderError represents an error from the inventory reader.
type ReaderError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ReaderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ReaderError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes reader errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeNotInstalled
	ErrTypeCommandFailed
)

// Sentinel errors for easy checking.
var (
	ErrNotInstalled = &ReaderError{
		Type:    ErrTypeNotInstalled,
		Message: "`ollama` command not found; ensure Ollama is installed and in PATH",
	}
)

// IsNotInstalled checks if an error indicates the ollama executable is missing.
func IsNotInstalled(err error) bool {
	var readerErr *ReaderError
	if errors.As(err, &readerErr) {
		return readerErr.Type == ErrTypeNotInstalled
	}
	return false
}

// IsCommandFailed checks if an error indicates `ollama list` exited non-zero.
func IsCommandFailed(err error) bool {
	var readerErr *ReaderError
	if errors.As(err, &readerErr) {
		return readerErr.Type == ErrTypeCommandFailed
	}
	return false
}

// =============================================================================
// MODEL ROWS
// =============================================================================

// Row is one installed model as reported by `ollama list`.
type Row struct {
	// Name is the model reference, e.g. "llama3:8b".
	Name string
	// ID is the short model identifier.
	ID string
	// Size is the human-readable size, value and unit joined, e.g. "5.2 GB".
	Size string
	// Modified is the free-form recency text, e.g. "2 months ago".
	Modified string
}

// Names extracts the name column from a row slice, preserving order.
func Names(rows []Row) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names
}

// =============================================================================
// READER
// =============================================================================

// listCommand is the external command enumerating installed models.
var listCommand = []string{"ollama", "list"}

// List runs `ollama list` and returns the parsed rows, sorted
// case-insensitively ascending by name. An empty slice with a nil error
// means no models are installed.
func List(ctx context.Context) ([]Row, error) {
	cmd := exec.CommandContext(ctx, listCommand[0], listCommand[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrNotInstalled
		}
		msg := "`ollama list` failed"
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += ": " + s
		}
		return nil, &ReaderError{Type: ErrTypeCommandFailed, Message: msg, Cause: err}
	}

	return Parse(stdout.String()), nil
}

// Parse converts `ollama list` output into rows.
//
// The first line is a header and is discarded. Each remaining line is split
// on whitespace; lines with fewer than four fields are silently dropped.
// Field 0 is the name, field 1 the id, fields 2-3 joined by a space form
// the size, and everything after is the modified text.
func Parse(output string) []Row {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 1 {
		return nil
	}

	var rows []Row
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		rows = append(rows, Row{
			Name:     fields[0],
			ID:       fields[1],
			Size:     fields[2] + " " + fields[3],
			Modified: strings.Join(fields[4:], " "),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
	return rows
}
