// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export copies model manifests and blobs into the destination tree.
//
// # Key Types
//
//   - Plan: the resolved set of models to export, built once and consumed
//     once (preview, then optionally copy)
//   - Exporter: performs the filesystem copies for one plan item
//
// Failures here are per-model: a model that cannot be exported is reported
// and skipped, and the remaining models still run. Missing blobs are
// reported per digest and never abort anything. This is deliberately softer
// than manifest resolution, which is fatal.
//
// The destination layout flattens the version into a filename
// (manifests/.../{base}/{version} as a file) where the source nests it as a
// directory entry under the model. That asymmetry matches the layout Ollama
// reads back, and is preserved on purpose.
package export
