// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - The export command: inventory, selection, preview, copy.

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/jeranaias/modelport/internal/config"
	"github.com/jeranaias/modelport/internal/export"
	"github.com/jeranaias/modelport/internal/inventory"
	"github.com/jeranaias/modelport/internal/selection"
	"github.com/jeranaias/modelport/internal/store"
)

// =============================================================================
// ENVIRONMENT
// =============================================================================

// ExportEnv carries the I/O and capabilities HandleExport works against.
// Tests inject scripted readers, buffers, and a canned inventory; main wires
// the real terminal.
type ExportEnv struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// ListModels enumerates the installed models. Defaults to inventory.List.
	ListModels func(ctx context.Context) ([]inventory.Row, error)

	// Selector presents the rows when no --model/--all was given. When nil,
	// one is chosen from the terminal state (full-screen picker on a TTY,
	// numeric prompt otherwise).
	Selector selection.Selector

	// Interactive reports whether prompting is possible at all. Defaults
	// to stdin TTY detection.
	Interactive func() bool

	// OutInteractive reports whether styled full-screen output is
	// possible. Defaults to stdout TTY detection.
	OutInteractive func() bool
}

func (env *ExportEnv) fillDefaults() {
	if env.ListModels == nil {
		env.ListModels = inventory.List
	}
	if env.Interactive == nil {
		env.Interactive = IsTTY
	}
	if env.OutInteractive == nil {
		env.OutInteractive = IsStdoutTTY
	}
}

// chooseSelector picks the selection UI. The full-screen picker needs both
// stdin and stdout on a terminal; Windows terminals are inconsistent enough
// with alt-screen handling that the numeric prompt is used there.
func (env *ExportEnv) chooseSelector(noPicker bool) selection.Selector {
	if env.Selector != nil {
		return env.Selector
	}
	if !noPicker && env.Interactive() && env.OutInteractive() && runtime.GOOS != "windows" {
		return selection.NewPicker()
	}
	return selection.NewPrompt(env.In, env.Out)
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

// HandleExport runs the full export flow. Errors are returned to main, which
// owns process exit; per-model copy failures are reported to Err and do not
// stop the remaining models.
func HandleExport(ctx context.Context, cfg *config.Config, args *Args, env *ExportEnv) error {
	env.fillDefaults()

	// Flag overrides beat config values, which beat platform defaults.
	if args.Output != "" {
		cfg.OutputDir = args.Output
	}
	if args.Source != "" {
		cfg.OllamaDir = args.Source
	}
	noPicker := cfg.NoPicker || args.NoPicker

	paths := store.Resolve(cfg)

	rows, err := env.ListModels(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(env.Out, "No models found. Try running `ollama pull <model>` first.")
		return nil
	}

	names, err := selectNames(rows, args, env, noPicker)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(env.Out, "No models selected.")
		return nil
	}

	plan, err := export.BuildPlan(paths, names)
	if err != nil {
		return err
	}

	printPreview(env.Out, paths, plan)

	ok, err := confirmExport(args, env)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(env.Out, "Export cancelled.")
		return nil
	}

	exporter := export.New(paths, env.Out)
	exported := 0
	for _, item := range plan.Items {
		if err := exporter.Export(item); err != nil {
			fmt.Fprintf(env.Err, "%s\n", ErrorStyle.Render(fmt.Sprintf("Error exporting %s: %v", item.Name, err)))
			continue
		}
		exported++
	}

	fmt.Fprintf(env.Out, "\n%s\n", SuccessStyle.Render(
		fmt.Sprintf("Done. %d of %d model(s) exported to %s", exported, len(plan.Items), paths.OutputDir)))
	return nil
}

// selectNames resolves which models to export: explicit --model names,
// --all, or an interactive selection.
func selectNames(rows []inventory.Row, args *Args, env *ExportEnv, noPicker bool) ([]string, error) {
	if len(args.Models) > 0 {
		return args.Models, nil
	}
	if args.All {
		return inventory.Names(rows), nil
	}
	if !env.Interactive() {
		return nil, fmt.Errorf("no models specified: pass --model or --all when stdin is not a terminal")
	}
	return env.chooseSelector(noPicker).Select(rows)
}

// printPreview shows what a confirmed export will copy, flagging blobs
// whose source files are already gone.
func printPreview(out io.Writer, paths store.Paths, plan *export.Plan) {
	fmt.Fprintf(out, "\n%s\n", TitleStyle.Render("Export plan"))
	fmt.Fprintf(out, "%s\n", DimStyle.Render("Destination: "+paths.OutputDir))

	for _, item := range plan.Items {
		missing := make(map[string]bool)
		for _, digest := range item.MissingBlobs(paths) {
			missing[digest] = true
		}

		fmt.Fprintf(out, "\n%s\n", TitleStyle.Render(item.Name))
		fmt.Fprintf(out, "  manifest  %s\n", DimStyle.Render(item.ManifestPath))
		for _, digest := range item.Digests {
			blob := filepath.Join(paths.BlobDir, store.BlobFileName(digest))
			if missing[digest] {
				fmt.Fprintf(out, "  blob      %s %s\n", DimStyle.Render(blob), WarnStyle.Render("(missing)"))
			} else {
				fmt.Fprintf(out, "  blob      %s\n", DimStyle.Render(blob))
			}
		}
	}
	fmt.Fprintln(out)
}

// confirmExport applies the --yes bypass, then prompts. A non-interactive
// stdin with no --yes cannot be confirmed and is an error.
func confirmExport(args *Args, env *ExportEnv) (bool, error) {
	if args.Yes {
		return true, nil
	}
	if !env.Interactive() {
		return false, ErrConfirmationRequired
	}
	return AskYesNo(env.In, env.Out, "Proceed with export? (y/n): ")
}
