// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// modelport exports installed Ollama models into a portable directory tree.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/modelport/internal/cli"
	"github.com/jeranaias/modelport/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the single error boundary: every command returns its error here
// and only main decides the exit code.
func run() error {
	cmd, args, err := cli.Parse()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.ConfigureStyles(cfg.UI.Color)

	ctx := context.Background()

	switch cmd {
	case cli.CmdList:
		return cli.HandleList(ctx, args, os.Stdout, nil)
	case cli.CmdVersion:
		cli.HandleVersion()
		return nil
	case cli.CmdHelp:
		cli.HandleHelp()
		return nil
	default:
		env := &cli.ExportEnv{
			In:  os.Stdin,
			Out: os.Stdout,
			Err: os.Stderr,
		}
		return cli.HandleExport(ctx, cfg, args, env)
	}
}
