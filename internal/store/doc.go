// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store knows the on-disk layout of an Ollama model store.
//
// The layout is a fixed external contract owned by Ollama:
//
//	{root}/manifests/registry.ollama.ai/library/{base}/{version}  manifest
//	{root}/blobs/{algorithm}-{hex}                                blob
//
// # Key Types
//
//   - Paths: the resolved source and destination directories
//   - Manifest: the parsed JSON manifest for one model version
//
// Path resolution is pure computation; the only I/O is the existence
// probing used to pick a store root on Linux, and reading manifest files.
package store
