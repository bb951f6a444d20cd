// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for modelport.
//
// Configuration is a plain value constructed once at process entry and
// passed into every component that needs it. Nothing in this package (or
// anywhere else in modelport) keeps ambient global configuration state.
//
// # Key Types
//
//   - Config: the complete modelport configuration
//
// # Configuration Precedence
//
//   - Command-line flags (applied by the caller, highest)
//   - Environment variables (MODELPORT_*)
//   - ~/.modelport/config.toml
//   - Built-in defaults
package config
