// Package theme holds the design-token tables mapping resolved option
// values to CSS class tokens. The default tables ship embedded; teams
// with their own token vocabulary load a replacement YAML at startup.
package theme

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Theme maps resolved option values to the class tokens they contribute.
// A Theme is read-only after Load; components consult it during
// construction only.
type Theme struct {
	Gutter    map[string]string `yaml:"gutter"`
	Spacing   map[string]string `yaml:"spacing"`
	Stacking  map[string]string `yaml:"stacking"`
	PaneWidth map[string]string `yaml:"pane_width"`
}

// Load parses token tables from YAML.
func Load(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: parse: %w", err)
	}
	return &t, nil
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the embedded token tables, parsed once.
func Default() *Theme {
	defaultOnce.Do(func() {
		var t Theme
		if err := yaml.Unmarshal(defaultYAML, &t); err != nil {
			// The embedded default is part of the library; failing to
			// parse it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("theme: embedded default.yaml: %v", err))
		}
		defaultTheme = &t
	})
	return defaultTheme
}

// GutterClass returns the token for a resolved gutter value, or "" when
// the table has no entry.
func (t *Theme) GutterClass(value string) string { return t.Gutter[value] }

// SpacingClass returns the token for a resolved spacing value.
func (t *Theme) SpacingClass(value string) string { return t.Spacing[value] }

// StackingClass returns the token for a resolved stacking value.
func (t *Theme) StackingClass(value string) string { return t.Stacking[value] }

// PaneWidthClass returns the token for a resolved pane width value.
func (t *Theme) PaneWidthClass(value string) string { return t.PaneWidth[value] }

// Tables returns the token tables by name, for tooling that iterates the
// whole vocabulary (the token generator, docs).
func (t *Theme) Tables() map[string]map[string]string {
	return map[string]map[string]string{
		"gutter":     t.Gutter,
		"spacing":    t.Spacing,
		"stacking":   t.Stacking,
		"pane_width": t.PaneWidth,
	}
}
