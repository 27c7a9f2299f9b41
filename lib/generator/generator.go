// Package generator emits Go constant definitions for a theme's design
// tokens, so components and templates can reference class tokens through
// the compiler instead of string literals.
//
// Input is a theme YAML (the same schema the theme package loads);
// output is a formatted, generated Go source file. Exposed through the
// CLI as "slotkit tokens".
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/pthm/slotkit/theme"
)

// Options configures token generation.
type Options struct {
	// DryRun prints what would be generated without writing files.
	DryRun bool
	// Verbose enables progress output.
	Verbose bool
	// Package is the package name of the generated file (default "tokens").
	Package string
}

// Generator generates token constant files from theme YAML.
type Generator struct {
	opts Options
}

// New creates a generator with the given options.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "tokens"
	}
	return &Generator{opts: opts}
}

// tokenGroup is one constant block in the generated file.
type tokenGroup struct {
	Name      string // table name, e.g. "gutter"
	Constants []tokenConstant
}

type tokenConstant struct {
	Ident string
	Value string
}

// Generate reads a theme YAML from inPath and writes the generated
// constants file to outPath.
func (g *Generator) Generate(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	th, err := theme.Load(f)
	if err != nil {
		return err
	}

	code, err := g.render(th)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		// Write unformatted for debugging
		if g.opts.DryRun {
			return fmt.Errorf("format source: %w", err)
		}
		if writeErr := os.WriteFile(outPath+".unformatted", code, 0644); writeErr == nil {
			fmt.Printf("  wrote unformatted code to %s.unformatted for debugging\n", outPath)
		}
		return fmt.Errorf("format source: %w", err)
	}

	if g.opts.Verbose || g.opts.DryRun {
		fmt.Printf("generating %s\n", outPath)
	}
	if g.opts.DryRun {
		return nil
	}
	return os.WriteFile(outPath, formatted, 0644)
}

// render produces the (unformatted) generated source.
func (g *Generator) render(th *theme.Theme) ([]byte, error) {
	tables := th.Tables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var groups []tokenGroup
	for _, name := range names {
		table := tables[name]
		if len(table) == 0 {
			continue
		}
		values := make([]string, 0, len(table))
		for v := range table {
			values = append(values, v)
		}
		sort.Strings(values)

		group := tokenGroup{Name: name}
		for _, v := range values {
			group.Constants = append(group.Constants, tokenConstant{
				Ident: exportedIdent(name) + exportedIdent(v),
				Value: table[v],
			})
		}
		groups = append(groups, group)
	}

	tmpl, err := template.New("tokens").Parse(tokensTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Groups  []tokenGroup
	}{
		Package: g.opts.Package,
		Groups:  groups,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportedIdent converts a token table name or value ("pane_width",
// "condensed") into an exported Go identifier fragment ("PaneWidth",
// "Condensed").
func exportedIdent(s string) string {
	var sb strings.Builder
	upperNext := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

const tokensTemplate = `// Code generated by slotkit tokens. DO NOT EDIT.

package {{.Package}}
{{range .Groups}}
// {{.Name}} tokens.
const (
{{- range .Constants}}
	{{.Ident}} = "{{.Value}}"
{{- end}}
)
{{end}}`
