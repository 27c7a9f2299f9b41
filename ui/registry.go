package ui

import "github.com/pthm/slotkit"

// Definitions returns the catalog definitions for the preview registry.
//
// Builders map the decoded config payload (string-keyed, as produced by
// the slotkit encoder) onto typed configs. Unknown keys are ignored;
// invalid enum values degrade to defaults inside the constructors, per
// the engine's leniency policy.
func Definitions() []slotkit.Definition {
	return []slotkit.Definition{
		{Name: "button", Build: buildButton},
		{Name: "button-group", Build: buildButtonGroup},
		{Name: "dialog", Build: buildDialog},
		{Name: "layout", Build: buildLayout},
	}
}

func buildButton(config map[string]any) (slotkit.Component, error) {
	return NewButton(buttonConfigFrom(config))
}

func buildButtonGroup(config map[string]any) (slotkit.Component, error) {
	g, err := NewButtonGroup(ButtonGroupConfig{Size: getString(config, "size")})
	if err != nil {
		return nil, err
	}
	for _, item := range getSlice(config, "buttons") {
		if err := g.AddButton(buttonConfigFrom(asMap(item))); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildDialog(config map[string]any) (slotkit.Component, error) {
	d, err := NewDialog(DialogConfig{Width: getString(config, "width")})
	if err != nil {
		return nil, err
	}

	if header := asMap(config["header"]); header != nil {
		err := d.WithHeader(DialogHeaderConfig{
			Title:   getString(header, "title"),
			Divider: getBool(header, "divider"),
		})
		if err != nil {
			return nil, err
		}
	}
	if body := asMap(config["body"]); body != nil {
		if err := d.WithBody(DialogBodyConfig{Text: getString(body, "text")}); err != nil {
			return nil, err
		}
	}
	if footer := asMap(config["footer"]); footer != nil {
		fc := DialogFooterConfig{Divider: getBool(footer, "divider")}
		for _, item := range getSlice(footer, "buttons") {
			fc.Buttons = append(fc.Buttons, buttonConfigFrom(asMap(item)))
		}
		if err := d.WithFooter(fc); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func buildLayout(config map[string]any) (slotkit.Component, error) {
	l, err := NewLayout(LayoutConfig{
		Gutter:   getString(config, "gutter"),
		Spacing:  getString(config, "spacing"),
		Stacking: getString(config, "stacking"),
	})
	if err != nil {
		return nil, err
	}

	if main := asMap(config["main"]); main != nil {
		mc := LayoutMainConfig{}
		if text := getString(main, "text"); text != "" {
			mc.Nodes = append(mc.Nodes, slotkit.TextNode(text))
		}
		if err := l.WithMain(mc); err != nil {
			return nil, err
		}
	}
	if pane := asMap(config["pane"]); pane != nil {
		pc := LayoutPaneConfig{
			Position: getString(pane, "position"),
			Width:    getString(pane, "width"),
		}
		if text := getString(pane, "text"); text != "" {
			pc.Nodes = append(pc.Nodes, slotkit.TextNode(text))
		}
		if err := l.WithPane(pc); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func buttonConfigFrom(m map[string]any) ButtonConfig {
	return ButtonConfig{
		Tag:    getString(m, "tag"),
		Scheme: getString(m, "scheme"),
		Size:   getString(m, "size"),
		Block:  getBool(m, "block"),
		Label:  getString(m, "label"),
	}
}

// asMap normalizes a decoded payload value to a string-keyed map.
// msgpack decodes untyped nested maps as map[string]any or map[any]any
// depending on the source; both are accepted.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	default:
		return nil
	}
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func getBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

func getSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	s, _ := m[key].([]any)
	return s
}
