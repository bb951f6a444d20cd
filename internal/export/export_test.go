// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/modelport/internal/store"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

// fakeStore builds a source store with one model manifest and the given
// blobs, returning the resolved paths.
func fakeStore(t *testing.T, model, manifestJSON string, blobs map[string]string) store.Paths {
	t.Helper()
	paths := store.FromRoots(t.TempDir(), filepath.Join(t.TempDir(), "out"))

	base, version, err := store.SplitName(model)
	if err != nil {
		t.Fatalf("bad fixture model name %q: %v", model, err)
	}

	manifestDir := filepath.Join(paths.ManifestDir, base)
	if err := os.MkdirAll(manifestDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(manifestDir, version), []byte(manifestJSON), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	if err := os.MkdirAll(paths.BlobDir, 0755); err != nil {
		t.Fatalf("mkdir blobs: %v", err)
	}
	for digest, content := range blobs {
		name := store.BlobFileName(digest)
		if err := os.WriteFile(filepath.Join(paths.BlobDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write blob: %v", err)
		}
	}
	return paths
}

func mustExport(t *testing.T, paths store.Paths, item Item) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(paths, &out).Export(item); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	return out.String()
}

// =============================================================================
// PLAN BUILDING
// =============================================================================

func TestBuildPlan(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[{"digest":"sha256:bb"},{}]}`,
		nil)

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if len(plan.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(plan.Items))
	}

	item := plan.Items[0]
	if item.Name != "llama3:8b" {
		t.Errorf("Name = %q", item.Name)
	}
	if len(item.Digests) != 2 || item.Digests[0] != "sha256:aa" || item.Digests[1] != "sha256:bb" {
		t.Errorf("Digests = %v, want [sha256:aa sha256:bb]", item.Digests)
	}
}

func TestBuildPlan_MissingManifestFatal(t *testing.T) {
	paths := store.FromRoots(t.TempDir(), t.TempDir())

	_, err := BuildPlan(paths, []string{"ghost:1b"})
	if !errors.Is(err, store.ErrManifestNotFound) {
		t.Errorf("err = %v, want ErrManifestNotFound", err)
	}
}

func TestBuildPlan_BadNameFatal(t *testing.T) {
	paths := store.FromRoots(t.TempDir(), t.TempDir())

	_, err := BuildPlan(paths, []string{"noversion"})
	if !errors.Is(err, store.ErrBadModelName) {
		t.Errorf("err = %v, want ErrBadModelName", err)
	}
}

func TestItem_MissingBlobs(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[{"digest":"sha256:bb"}]}`,
		map[string]string{"sha256:aa": "config"})

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	missing := plan.Items[0].MissingBlobs(paths)
	if len(missing) != 1 || missing[0] != "sha256:bb" {
		t.Errorf("missing = %v, want [sha256:bb]", missing)
	}
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExport_EndToEnd(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[{"digest":"sha256:bb"},{}]}`,
		map[string]string{"sha256:aa": "config-bytes", "sha256:bb": "layer-bytes"})

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	mustExport(t, paths, plan.Items[0])

	// Manifest lands flattened: version is a filename, not a directory.
	manifest := filepath.Join(paths.OutputDir, "manifests", "registry.ollama.ai", "library", "llama3", "8b")
	info, err := os.Stat(manifest)
	if err != nil {
		t.Fatalf("manifest not exported: %v", err)
	}
	if info.IsDir() {
		t.Error("destination manifest must be a file, not a directory")
	}

	for digest, content := range map[string]string{"sha256-aa": "config-bytes", "sha256-bb": "layer-bytes"} {
		data, err := os.ReadFile(filepath.Join(paths.OutputDir, "blobs", digest))
		if err != nil {
			t.Fatalf("blob %s not exported: %v", digest, err)
		}
		if string(data) != content {
			t.Errorf("blob %s content = %q, want %q", digest, data, content)
		}
	}

	// The layer without a digest produces no file: exactly manifest + 2 blobs.
	entries, err := os.ReadDir(filepath.Join(paths.OutputDir, "blobs"))
	if err != nil {
		t.Fatalf("read blobs dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d blobs, want 2", len(entries))
	}
}

func TestExport_MissingBlobSkippedNotFatal(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[{"digest":"sha256:gone"},{"digest":"sha256:bb"}]}`,
		map[string]string{"sha256:aa": "a", "sha256:bb": "b"})

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	out := mustExport(t, paths, plan.Items[0])

	// Count the full notice line so path text echoed elsewhere in the
	// output (temp dirs can contain arbitrary words) is not miscounted.
	if n := strings.Count(out, "  - Skipped "); n != 1 {
		t.Errorf("got %d skip notices, want exactly 1:\n%s", n, out)
	}
	if !strings.Contains(out, "  - Skipped sha256-gone (file not found)") {
		t.Errorf("missing skip notice for sha256-gone:\n%s", out)
	}

	// Both present blobs still copied.
	for _, name := range []string{"sha256-aa", "sha256-bb"} {
		if _, err := os.Stat(filepath.Join(paths.OutputDir, "blobs", name)); err != nil {
			t.Errorf("blob %s should have been copied: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(paths.OutputDir, "blobs", "sha256-gone")); err == nil {
		t.Error("missing blob must not be created at the destination")
	}
}

func TestExport_Idempotent(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[]}`,
		map[string]string{"sha256:aa": "payload"})

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	mustExport(t, paths, plan.Items[0])
	mustExport(t, paths, plan.Items[0]) // second run must not error

	data, err := os.ReadFile(filepath.Join(paths.OutputDir, "blobs", "sha256-aa"))
	if err != nil {
		t.Fatalf("blob missing after second run: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("blob content = %q after rerun", data)
	}
}

func TestExport_BadNameRecoverable(t *testing.T) {
	paths := store.FromRoots(t.TempDir(), filepath.Join(t.TempDir(), "out"))

	var out bytes.Buffer
	err := New(paths, &out).Export(Item{Name: "broken", ManifestPath: "x", Digests: nil})
	if err == nil {
		t.Fatal("expected an error for a malformed name")
	}
	if !strings.Contains(err.Error(), "Invalid model name format") &&
		!strings.Contains(err.Error(), "invalid model name format") {
		t.Errorf("err = %v, want invalid name report", err)
	}

	// Nothing may have been created.
	if _, statErr := os.Stat(paths.OutputDir); statErr == nil {
		t.Error("export must not create output for a model it refuses")
	}
}

func TestExport_PreservesModTime(t *testing.T) {
	paths := fakeStore(t, "llama3:8b",
		`{"config":{"digest":"sha256:aa"},"layers":[]}`,
		map[string]string{"sha256:aa": "payload"})

	src := filepath.Join(paths.BlobDir, "sha256-aa")
	srcInfo, err := os.Stat(src)
	if err != nil {
		t.Fatalf("stat src: %v", err)
	}

	plan, err := BuildPlan(paths, []string{"llama3:8b"})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	mustExport(t, paths, plan.Items[0])

	dstInfo, err := os.Stat(filepath.Join(paths.OutputDir, "blobs", "sha256-aa"))
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if !dstInfo.ModTime().Equal(srcInfo.ModTime()) {
		t.Errorf("mtime not preserved: src %v, dst %v", srcInfo.ModTime(), dstInfo.ModTime())
	}
}
