// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and dispatch for modelport.

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdExport Command = iota // default
	CmdList
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Models lists model names given with --model; skips selection.
	Models []string
	// Output overrides the destination root.
	Output string
	// Source overrides the Ollama store root.
	Source string
	// All selects every installed model without prompting.
	All bool
	// Yes skips the copy confirmation prompt.
	Yes bool
	// NoPicker forces the line-mode numeric prompt.
	NoPicker bool
	// JSON switches `list` to machine-readable output.
	JSON bool

	// Raw holds the arguments after the command word.
	Raw []string
}

const usageText = `modelport - export installed Ollama models to a portable directory

Modelport copies a model's manifest and every blob it references out of the
local Ollama store into a relocatable tree with the same layout, so the
model can be moved to another machine without re-downloading.

Usage:
  modelport                  Interactive export (pick models, preview, copy)
  modelport export [flags]   Same as the default command
  modelport list [--json]    Print the installed-model inventory
  modelport version          Print version information
  modelport help             Show this help

Flags for export:
  --model NAME       Export the named model(s) directly (repeatable,
                     comma-separated, each in base:version form);
                     skips selection
  --all              Select every installed model
  -o, --output DIR   Destination root (default ./ollama)
  -s, --source DIR   Ollama store root (default: platform detection)
  -y, --yes          Skip the copy confirmation prompt
  --no-picker        Use the numeric prompt instead of the full-screen picker

Configuration:
  ~/.modelport/config.toml   output_dir, ollama_dir, no_picker, [ui] color
  MODELPORT_OUTPUT_DIR, MODELPORT_OLLAMA_DIR, MODELPORT_NO_PICKER

Examples:
  modelport                          # pick models interactively
  modelport --model llama3:8b -y     # scripted export of one model
  modelport --all -o /mnt/usb/ollama # everything onto a USB drive
  modelport list --json              # inventory for tooling
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, *Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses a raw argument slice. Split out for tests.
func ParseArgs(argv []string) (Command, *Args, error) {
	cmd := CmdExport
	rest := argv

	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		switch argv[0] {
		case "export":
			cmd = CmdExport
		case "list", "ls":
			cmd = CmdList
		case "version":
			cmd = CmdVersion
		case "help":
			cmd = CmdHelp
		default:
			// Unknown word: show help rather than guessing.
			return CmdHelp, &Args{Raw: argv}, nil
		}
		rest = argv[1:]
	}

	parser := NewArgParser(rest)
	if err := parser.Err(); err != nil {
		return cmd, &Args{Raw: rest}, err
	}

	args := &Args{
		Output:   parser.FlagOr("output", parser.Flag("o")),
		Source:   parser.FlagOr("source", parser.Flag("s")),
		All:      parser.BoolFlag("all"),
		Yes:      parser.BoolFlag("yes") || parser.BoolFlag("y"),
		NoPicker: parser.BoolFlag("no-picker"),
		JSON:     parser.BoolFlag("json"),
		Raw:      rest,
	}

	// Repeated --model accumulates; each occurrence may itself be a
	// comma-separated list.
	for _, models := range parser.Values("model") {
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				args.Models = append(args.Models, m)
			}
		}
	}

	// Top-level --help/--version beat everything.
	if parser.BoolFlag("help") || parser.BoolFlag("h") {
		return CmdHelp, args, nil
	}
	if parser.BoolFlag("version") || parser.BoolFlag("v") {
		return CmdVersion, args, nil
	}

	return cmd, args, nil
}

// HandleHelp prints the usage text.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("modelport %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
