// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// manifest.go - Locating and parsing Ollama model manifests.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

// Sentinel errors for manifest resolution. Both are preconditions the
// export flow cannot proceed without; callers propagate them to the
// top-level boundary rather than recovering.
var (
	ErrBadModelName     = fmt.Errorf("model name is not in base:version form")
	ErrManifestNotFound = fmt.Errorf("manifest not found")
)

// =============================================================================
// MODEL NAMES
// =============================================================================

// SplitName splits a model name of the form "base:version" into its two
// parts. Exactly one colon with non-empty parts on both sides is required;
// anything else returns ErrBadModelName wrapped with the offending name.
func SplitName(name string) (base, version string, err error) {
	parts := strings.Split(name, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadModelName, name)
	}
	return parts[0], parts[1], nil
}

// BlobFileName maps a digest to its on-disk blob filename by replacing
// ":" with "-". Pure function; "sha256:abc" becomes "sha256-abc".
func BlobFileName(digest string) string {
	return strings.ReplaceAll(digest, ":", "-")
}

// =============================================================================
// MANIFEST FORMAT
// =============================================================================

// Manifest is the JSON descriptor for one model version. Only the digest
// fields matter to modelport; unknown fields are ignored.
type Manifest struct {
	Config struct {
		Digest string `json:"digest"`
	} `json:"config"`
	Layers []struct {
		Digest string `json:"digest"`
	} `json:"layers"`
}

// Digests returns the ordered digest list for the manifest: the config
// digest if present, then each layer digest in array order. Missing fields
// are simply omitted. Duplicates are preserved.
func (m *Manifest) Digests() []string {
	var digests []string
	if m.Config.Digest != "" {
		digests = append(digests, m.Config.Digest)
	}
	for _, layer := range m.Layers {
		if layer.Digest != "" {
			digests = append(digests, layer.Digest)
		}
	}
	return digests
}

// =============================================================================
// LOCATE & PARSE
// =============================================================================

// LocateManifest returns the manifest file path for a model name under the
// resolved store. The name must split into base:version and the file must
// exist; manifests are never synthesized or repaired.
func (p Paths) LocateManifest(name string) (string, error) {
	base, version, err := SplitName(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(p.ManifestDir, base, version)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w for model %s: %s", ErrManifestNotFound, name, path)
	}
	return path, nil
}

// ParseManifest reads and parses a manifest file and returns its ordered
// digest list. A structurally malformed document is an error; the caller
// aborts the whole run on it.
func ParseManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return manifest.Digests(), nil
}
