package slotkit

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Node is the fully resolved render tree handed to the renderer: a tag,
// its final attribute map (composed class string included), and ordered
// children. A Node with an empty Tag is a text node.
//
// The engine guarantees the tree contains no unresolved option
// placeholders and that the "class" attribute, when present, is a single
// whitespace-separated deduplicated string.
type Node struct {
	Tag      string
	Attrs    templ.Attributes
	Text     string // text content for text nodes (Tag == "")
	Children []*Node
}

// TextNode creates a text node. Content is escaped at render time.
func TextNode(content string) *Node {
	return &Node{Text: content}
}

// Element creates an element node with the given children, skipping nils.
func Element(tag string, attrs templ.Attributes, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// voidElements render with no closing tag and never emit children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Templ adapts the node into a templ.Component for the rendering layer.
//
//	node, err := dialog.Render()
//	...
//	templ.Handler(node.Templ()).ServeHTTP(w, r)
//
// Output is deterministic: attributes are written in sorted key order and
// children in tree order, so identical trees always produce identical
// markup. Text and attribute values are HTML-escaped.
func (n *Node) Templ() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.write(w)
	})
}

// HTML renders the node to a string. Convenience for tests and snapshots.
func (n *Node) HTML() string {
	var sb strings.Builder
	_ = n.write(&sb)
	return sb.String()
}

func (n *Node) write(w io.Writer) error {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		_, err := io.WriteString(w, html.EscapeString(n.Text))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	if err := writeAttrs(w, n.Attrs); err != nil {
		return err
	}
	if voidElements[n.Tag] {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.write(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

func writeAttrs(w io.Writer, attrs templ.Attributes) error {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			// Boolean attributes: present when true, omitted when false.
			if v {
				if _, err := io.WriteString(w, " "+k); err != nil {
					return err
				}
			}
		case string:
			if _, err := io.WriteString(w, " "+k+`="`+html.EscapeString(v)+`"`); err != nil {
				return err
			}
		default:
			if _, err := io.WriteString(w, " "+k+`="`+html.EscapeString(fmt.Sprintf("%v", v))+`"`); err != nil {
				return err
			}
		}
	}
	return nil
}
