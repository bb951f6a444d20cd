// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jeranaias/modelport/internal/inventory"
)

func TestHandleListTable(t *testing.T) {
	rows := []inventory.Row{
		{Name: "llama3:8b", ID: "abc123", Size: "4.7 GB", Modified: "2 days ago"},
		{Name: "phi3:mini", ID: "def456", Size: "2.2 GB", Modified: "3 weeks ago"},
	}

	var out bytes.Buffer
	err := HandleList(context.Background(), &Args{}, &out, cannedInventory(rows))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Name", "ID", "Size", "Modified", "llama3:8b", "phi3:mini", "4.7 GB"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "#") {
		t.Error("list table must not be numbered")
	}
}

func TestHandleListEmpty(t *testing.T) {
	var out bytes.Buffer
	err := HandleList(context.Background(), &Args{}, &out, cannedInventory(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No models found.") {
		t.Errorf("expected empty-inventory hint, got:\n%s", out.String())
	}
}

func TestHandleListJSON(t *testing.T) {
	rows := []inventory.Row{
		{Name: "llama3:8b", ID: "abc123", Size: "4.7 GB", Modified: "2 days ago"},
	}

	var out bytes.Buffer
	err := HandleList(context.Background(), &Args{JSON: true}, &out, cannedInventory(rows))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(decoded))
	}
	if decoded[0]["name"] != "llama3:8b" || decoded[0]["modified"] != "2 days ago" {
		t.Errorf("unexpected JSON entry: %v", decoded[0])
	}
}

func TestHandleListJSONEmptyIsArray(t *testing.T) {
	var out bytes.Buffer
	err := HandleList(context.Background(), &Args{JSON: true}, &out, cannedInventory(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}
