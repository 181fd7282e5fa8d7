package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExportDOT(t *testing.T) {
	path, frameID := writeBoardWithFrame(t)
	c := testCLI()
	ctx := context.Background()

	if err := c.runSeed(ctx, path, frameID, "", false); err != nil {
		t.Fatalf("runSeed() error = %v", err)
	}

	out := filepath.Join(t.TempDir(), "board.dot")
	if err := c.runExport(ctx, path, out, formatDOT); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph board") {
		t.Errorf("output is not a DOT graph:\n%s", dot)
	}
	if !strings.Contains(dot, "Initial Frame") {
		t.Errorf("output missing seeded card:\n%s", dot)
	}
}

func TestRunExportMissingBoard(t *testing.T) {
	c := testCLI()
	err := c.runExport(context.Background(), filepath.Join(t.TempDir(), "nope.json"), "", formatDOT)
	if err == nil {
		t.Fatal("runExport() error = nil for missing board")
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"board.json", "svg", "board.svg"},
		{"board.json", "dot", "board.dot"},
		{"path/to/b.json", "svg", "path/to/b.svg"},
		{"noext", "svg", "noext.svg"},
	}

	for _, tt := range tests {
		if got := defaultOutput(tt.input, tt.format); got != tt.want {
			t.Errorf("defaultOutput(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 5, "hello…"},
		{"newlines collapsed", "a\nb", 10, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
