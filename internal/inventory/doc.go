// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inventory reads the list of installed models from the Ollama CLI.
//
// The `ollama list` command is a hard dependency: if the executable is
// missing or exits non-zero the reader returns a typed error and the
// program cannot proceed. An empty inventory, by contrast, is a normal
// result the caller treats as "nothing to do".
//
// # Key Types
//
//   - Row: one installed model (name, id, size, modified)
//   - ReaderError: typed error with NotInstalled/CommandFailed categories
package inventory
