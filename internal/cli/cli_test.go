package cli

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "quivertool")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", "quivertool"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "quivertool" {
		t.Errorf("Use = %q, want %q", root.Use, "quivertool")
	}

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, strings.Fields(cmd.Use)[0])
	}
	for _, want := range []string{"build", "count", "indecomp", "render", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q (have %v)", want, names)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{FormatJSON}},
		{"svg", []string{"svg"}},
		{"svg,png,dot", []string{"svg", "png", "dot"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"json", "dot", "svg", "png"}); err != nil {
		t.Errorf("validateFormats(valid) = %v", err)
	}
	if err := validateFormats([]string{"svg", "gif"}); err == nil {
		t.Error("validateFormats(gif) should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, output, format string
		multiple              bool
		want                  string
	}{
		{"q.toml", "", "json", false, "q.ar.json"},
		{"q.toml", "out.json", "json", false, "out.json"},
		{"q.toml", "out", "svg", true, "out.svg"},
		{"q.toml", "", "png", true, "q.ar.png"},
	}
	for _, tt := range tests {
		got := outputPath(tt.input, tt.output, tt.format, tt.multiple)
		if got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
				tt.input, tt.output, tt.format, tt.multiple, got, tt.want)
		}
	}
}
