package ui

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/slotkit"
)

func TestNewButton(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ButtonConfig
		expectTag   string
		expectClass string
	}{
		{
			name:        "defaults",
			cfg:         ButtonConfig{Label: "Save"},
			expectTag:   "button",
			expectClass: "btn",
		},
		{
			name:        "primary large",
			cfg:         ButtonConfig{Scheme: "primary", Size: "large"},
			expectTag:   "button",
			expectClass: "btn btn-primary btn-lg",
		},
		{
			name:        "small danger block",
			cfg:         ButtonConfig{Scheme: "danger", Size: "small", Block: true},
			expectTag:   "button",
			expectClass: "btn btn-danger btn-sm btn-block",
		},
		{
			name:        "anchor tag",
			cfg:         ButtonConfig{Tag: "a", Scheme: "invisible"},
			expectTag:   "a",
			expectClass: "btn btn-invisible",
		},
		{
			name:        "invalid enums degrade to defaults",
			cfg:         ButtonConfig{Tag: "div", Scheme: "sparkly", Size: "huge"},
			expectTag:   "button",
			expectClass: "btn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			btn, err := NewButton(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			result, err := slotkit.RenderTest(btn)
			if err != nil {
				t.Fatal(err)
			}
			if result.RootTag() != tt.expectTag {
				t.Errorf("tag = %q, want %q", result.RootTag(), tt.expectTag)
			}
			if result.RootClasses() != tt.expectClass {
				t.Errorf("classes = %q, want %q", result.RootClasses(), tt.expectClass)
			}
		})
	}
}

func TestButtonTypeAttribute(t *testing.T) {
	btn, err := NewButton(ButtonConfig{Label: "x"})
	if err != nil {
		t.Fatal(err)
	}
	result, err := slotkit.RenderTest(btn)
	if err != nil {
		t.Fatal(err)
	}
	if result.Attr("type") != "button" {
		t.Errorf("type = %q, want button", result.Attr("type"))
	}

	// Anchor buttons carry no type attribute
	link, _ := NewButton(ButtonConfig{Tag: "a"})
	result, err = slotkit.RenderTest(link)
	if err != nil {
		t.Fatal(err)
	}
	if result.Attr("type") != "" {
		t.Errorf("anchor type = %q, want none", result.Attr("type"))
	}
}

func TestButtonDisallowsTypeOverride(t *testing.T) {
	_, err := NewButton(ButtonConfig{Attrs: templ.Attributes{"type": "submit"}})
	if !slotkit.IsConfiguration(err) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestButtonLabelEscaped(t *testing.T) {
	btn, err := NewButton(ButtonConfig{Label: "<script>"})
	if err != nil {
		t.Fatal(err)
	}
	result, err := slotkit.RenderTest(btn)
	if err != nil {
		t.Fatal(err)
	}
	if result.HTMLContains("<script>") {
		t.Errorf("label not escaped: %q", result.HTML)
	}
	if !result.HTMLContains("&lt;script&gt;") {
		t.Errorf("escaped label missing: %q", result.HTML)
	}
}

func TestButtonFreeFormAttrs(t *testing.T) {
	btn, err := NewButton(ButtonConfig{
		Label: "x",
		Attrs: templ.Attributes{"aria-label": "Close dialog", "data-id": "7"},
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := slotkit.RenderTest(btn)
	if err != nil {
		t.Fatal(err)
	}
	if result.Attr("aria-label") != "Close dialog" || result.Attr("data-id") != "7" {
		t.Errorf("free-form attrs lost: %v", result.Node.Attrs)
	}
}
