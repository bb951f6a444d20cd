// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// list_cmd.go - The list command: print the installed-model inventory.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeranaias/modelport/internal/inventory"
	"github.com/jeranaias/modelport/internal/selection"
)

// listRow is the JSON shape for one model in `list --json` output.
type listRow struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Size     string `json:"size"`
	Modified string `json:"modified"`
}

// HandleList prints the inventory, as a table by default or as a JSON array
// with --json. An empty inventory prints a hint on the table path and an
// empty array on the JSON path, so scripts always get valid JSON.
func HandleList(ctx context.Context, args *Args, out io.Writer,
	listModels func(ctx context.Context) ([]inventory.Row, error)) error {

	if listModels == nil {
		listModels = inventory.List
	}

	rows, err := listModels(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return writeJSON(out, rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No models found. Try running `ollama pull <model>` first.")
		return nil
	}

	fmt.Fprint(out, selection.FormatTable(rows, false))
	return nil
}

func writeJSON(out io.Writer, rows []inventory.Row) error {
	list := make([]listRow, len(rows))
	for i, row := range rows {
		list[i] = listRow{Name: row.Name, ID: row.ID, Size: row.Size, Modified: row.Modified}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
