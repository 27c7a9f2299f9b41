package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTheme = `
gutter:
  none: LayoutBeta--gutter-none
  normal: LayoutBeta--gutter-normal
pane_width:
  narrow: LayoutBeta-pane--width-narrow
`

func writeTheme(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte(testTheme), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	in := writeTheme(t)
	out := filepath.Join(filepath.Dir(in), "tokens_gen.go")

	gen := New(Options{})
	if err := gen.Generate(in, out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)

	// gofmt aligns const blocks, so assert idents and values separately.
	wants := []string{
		"// Code generated by slotkit tokens. DO NOT EDIT.",
		"package tokens",
		"GutterNone",
		`"LayoutBeta--gutter-none"`,
		"GutterNormal",
		`"LayoutBeta--gutter-normal"`,
		"PaneWidthNarrow",
		`"LayoutBeta-pane--width-narrow"`,
	}
	for _, want := range wants {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGeneratePackageOption(t *testing.T) {
	in := writeTheme(t)
	out := filepath.Join(filepath.Dir(in), "tokens_gen.go")

	gen := New(Options{Package: "designtokens"})
	if err := gen.Generate(in, out); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "package designtokens") {
		t.Errorf("generated source missing package override:\n%s", data)
	}
}

func TestGenerateDryRun(t *testing.T) {
	in := writeTheme(t)
	out := filepath.Join(filepath.Dir(in), "tokens_gen.go")

	gen := New(Options{DryRun: true})
	if err := gen.Generate(in, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run must not write the output file")
	}
}

func TestGenerateMissingInput(t *testing.T) {
	gen := New(Options{})
	if err := gen.Generate(filepath.Join(t.TempDir(), "absent.yaml"), "out.go"); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"gutter", "Gutter"},
		{"pane_width", "PaneWidth"},
		{"separate-regions", "SeparateRegions"},
		{"none", "None"},
	}
	for _, tt := range tests {
		if got := exportedIdent(tt.in); got != tt.expect {
			t.Errorf("exportedIdent(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
