// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export.go - Plan building and file copying.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jeranaias/modelport/internal/store"
)

// =============================================================================
// EXPORT PLAN
// =============================================================================

// Item is one model scheduled for export.
type Item struct {
	// Name is the model reference, e.g. "llama3:8b".
	Name string
	// ManifestPath is the resolved source manifest file.
	ManifestPath string
	// Digests is the ordered digest list from the manifest.
	Digests []string
}

// Plan is the full set of models for one invocation. Built once by the
// orchestrator, rendered as a preview, then optionally executed. Never
// persisted.
type Plan struct {
	Items []Item
}

// BuildPlan resolves every selected model name into a plan item. Manifest
// resolution failures are fatal for the whole run (a missing manifest or a
// malformed name means the store is not in a state we can export from).
func BuildPlan(paths store.Paths, names []string) (*Plan, error) {
	plan := &Plan{Items: make([]Item, 0, len(names))}
	for _, name := range names {
		manifestPath, err := paths.LocateManifest(name)
		if err != nil {
			return nil, err
		}
		digests, err := store.ParseManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		plan.Items = append(plan.Items, Item{
			Name:         name,
			ManifestPath: manifestPath,
			Digests:      digests,
		})
	}
	return plan, nil
}

// MissingBlobs returns the digests in the item whose source blob file does
// not exist. Used by the preview to flag them before any copy happens.
func (it Item) MissingBlobs(paths store.Paths) []string {
	var missing []string
	for _, digest := range it.Digests {
		blob := filepath.Join(paths.BlobDir, store.BlobFileName(digest))
		if _, err := os.Stat(blob); err != nil {
			missing = append(missing, digest)
		}
	}
	return missing
}

// =============================================================================
// EXPORTER
// =============================================================================

// Exporter copies manifests and blobs for plan items. Progress lines are
// written to Out; errors that abort a single model are returned so the
// caller can report them and continue.
type Exporter struct {
	Paths store.Paths
	Out   io.Writer
}

// New creates an Exporter for the resolved paths.
func New(paths store.Paths, out io.Writer) *Exporter {
	return &Exporter{Paths: paths, Out: out}
}

// Export copies one model's manifest and blobs into the destination tree.
//
// The returned error covers this model only; the caller proceeds with the
// next one. Missing source blobs are not errors: each is reported as
// skipped and the remaining digests still copy. Re-running the same export
// is idempotent (plain overwrites).
func (e *Exporter) Export(item Item) error {
	base, version, err := store.SplitName(item.Name)
	if err != nil {
		// The name resolved earlier, so this indicates an inconsistency;
		// report and skip this model rather than killing the run.
		return fmt.Errorf("invalid model name format: %s", item.Name)
	}

	manifestDir := e.Paths.OutputManifestDir(base)
	blobsDir := e.Paths.OutputBlobDir()

	if err := os.MkdirAll(manifestDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", manifestDir, err)
	}
	if err := os.MkdirAll(blobsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", blobsDir, err)
	}

	// Version becomes a flat filename in the destination tree.
	destManifest := filepath.Join(manifestDir, version)
	fmt.Fprintf(e.Out, "\nCopying manifest to %s...\n", destManifest)
	if err := copyFile(item.ManifestPath, destManifest); err != nil {
		return fmt.Errorf("failed to copy manifest: %w", err)
	}
	fmt.Fprintln(e.Out, "  + Manifest copied")

	fmt.Fprintln(e.Out, "\nCopying blobs...")
	for _, digest := range item.Digests {
		name := store.BlobFileName(digest)
		src := filepath.Join(e.Paths.BlobDir, name)

		if _, err := os.Stat(src); err != nil {
			fmt.Fprintf(e.Out, "  - Skipped %s (file not found)\n", name)
			continue
		}

		if err := copyFile(src, filepath.Join(blobsDir, name)); err != nil {
			return fmt.Errorf("failed to copy blob %s: %w", name, err)
		}
		fmt.Fprintf(e.Out, "  + %s\n", name)
	}

	return nil
}

// =============================================================================
// FILE COPY
// =============================================================================

// copyFile copies src to dst byte-for-byte, overwriting dst if it exists
// and preserving the source's mode and modification time where the
// platform allows.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Best effort: mirror mode and mtime like a `cp -p`.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
