// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Flag parsing shared by all modelport commands.

package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser handles the flag formats modelport accepts:
//
//	--flag value     long flag with space-separated value
//	--flag=value     long flag with equals sign
//	-f value         short flag with space-separated value
//	--flag           boolean flag
//
// Everything else is a positional argument. Repeating a value flag
// accumulates every occurrence. A value flag followed by another flag
// token is rejected rather than silently dropping the value.
type ArgParser struct {
	flags      map[string][]string
	boolFlags  map[string]bool
	positional []string
	err        error
}

// NewArgParser creates a parser from raw arguments.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string][]string),
		boolFlags: make(map[string]bool),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			i++
			continue
		}

		// --flag=value
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			name := strings.TrimLeft(parts[0], "-")
			value := parts[1]
			if value == "true" || value == "false" {
				p.boolFlags[name] = value == "true"
			} else {
				p.flags[name] = append(p.flags[name], value)
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")

		// Known boolean flags never consume the next argument.
		if isBoolFlag(name) {
			p.boolFlags[name] = true
			i++
			continue
		}

		// Flag with a value.
		if i+1 < len(raw) {
			if strings.HasPrefix(raw[i+1], "-") {
				p.err = fmt.Errorf("flag %s requires a value, got %q", arg, raw[i+1])
				return p
			}
			p.flags[name] = append(p.flags[name], raw[i+1])
			i += 2
			continue
		}

		// Trailing flag without a value: treat as boolean.
		p.boolFlags[name] = true
		i++
	}

	return p
}

// isBoolFlag lists the flags that take no value.
func isBoolFlag(name string) bool {
	switch name {
	case "all", "yes", "y", "no-picker", "json", "help", "h", "version", "v":
		return true
	}
	return false
}

// Err reports the first parse problem encountered, if any.
func (p *ArgParser) Err() error {
	return p.err
}

// Flag returns the last value of a string flag, or "".
func (p *ArgParser) Flag(name string) string {
	values := p.flags[name]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Values returns every occurrence of a repeated flag, in order.
func (p *ArgParser) Values(name string) []string {
	return p.flags[name]
}

// FlagOr returns the value of name, falling back to fallback if unset.
func (p *ArgParser) FlagOr(name, fallback string) string {
	if v := p.Flag(name); v != "" {
		return v
	}
	return fallback
}

// BoolFlag returns whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Positional returns the positional arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}
