// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// paths.go - Source store and destination directory resolution.

package store

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/jeranaias/modelport/internal/config"
)

// =============================================================================
// PATH LAYOUT
// =============================================================================

const (
	// DefaultOutputDir is the export destination when no override is set.
	DefaultOutputDir = "./ollama"

	// manifestSuffix and blobSuffix are the store-internal directory names.
	// They are a fixed contract with Ollama and are not configurable.
	manifestSuffix = "manifests/registry.ollama.ai/library"
	blobSuffix     = "blobs"
)

// Paths holds every directory modelport reads from or writes to.
type Paths struct {
	// Root is the Ollama store root on the source side.
	Root string

	// ManifestDir is Root/manifests/registry.ollama.ai/library.
	ManifestDir string

	// BlobDir is Root/blobs.
	BlobDir string

	// OutputDir is the destination root for the export tree.
	OutputDir string
}

// OutputManifestDir returns the destination manifest directory for a model
// base name (version becomes a flat filename inside it, see export).
func (p Paths) OutputManifestDir(base string) string {
	return filepath.Join(p.OutputDir, filepath.FromSlash(manifestSuffix), base)
}

// OutputBlobDir returns the destination blob directory.
func (p Paths) OutputBlobDir() string {
	return filepath.Join(p.OutputDir, blobSuffix)
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve computes all paths from the configuration and the host platform.
// Overrides are used verbatim; otherwise platform defaults apply. This never
// fails: the existence checks below are for branching only.
func Resolve(cfg *config.Config) Paths {
	root := cfg.OllamaDir
	if root == "" {
		root = detectRoot(runtime.GOOS)
	}

	out := cfg.OutputDir
	if out == "" {
		out = DefaultOutputDir
	}

	return FromRoots(root, out)
}

// FromRoots builds Paths from explicit source and destination roots.
// Used directly by tests to run every component against temp directories.
func FromRoots(root, outputDir string) Paths {
	return Paths{
		Root:        root,
		ManifestDir: filepath.Join(root, filepath.FromSlash(manifestSuffix)),
		BlobDir:     filepath.Join(root, blobSuffix),
		OutputDir:   outputDir,
	}
}

// detectRoot picks the Ollama store root for the host platform.
//
// macOS and Windows keep the store under the user's home directory. On
// Linux (and anything else) the system-wide locations are probed in order,
// each tested for a blobs subdirectory, with a final hardcoded fallback.
func detectRoot(goos string) string {
	switch goos {
	case "darwin", "windows":
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		return filepath.Join(home, ".ollama", "models")
	default:
		if dirExists(filepath.Join("/var/lib/ollama", "blobs")) {
			return "/var/lib/ollama"
		}
		if dirExists(filepath.Join("/var/lib/ollama/models", "blobs")) {
			return "/var/lib/ollama"
		}
		return "/usr/share/ollama/models"
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
