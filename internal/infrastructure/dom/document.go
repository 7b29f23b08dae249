// Package dom is the widget document adapter used by the interaction locks.
// It edits a parsed HTML page in memory and renders it back out.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/xiboic/internal/domain/entity"
)

const (
	bodyXPath     = "//body"
	headXPath     = "//head"
	viewportXPath = "//meta[@name='viewport']"
)

// Document is an in-memory widget page. It implements port.WidgetDocument.
// It is not safe for concurrent use.
type Document struct {
	root *html.Node
}

// Parse reads an HTML page. Missing <head> and <body> elements are
// synthesised by the parser.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse widget document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// Render writes the page back out.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the page, returning "" if rendering fails.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Attribute implements port.WidgetDocument.
func (d *Document) Attribute(el entity.DocumentElement, name string) (string, bool) {
	node := d.element(el)
	if node == nil {
		return "", false
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute implements port.WidgetDocument.
func (d *Document) SetAttribute(el entity.DocumentElement, name, value string) error {
	node := d.element(el)
	if node == nil {
		return fmt.Errorf("%s: %w", el, entity.ErrElementNotFound)
	}
	for i, a := range node.Attr {
		if a.Namespace == "" && a.Key == name {
			node.Attr[i].Val = value
			return nil
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
	return nil
}

// RemoveAttribute implements port.WidgetDocument.
func (d *Document) RemoveAttribute(el entity.DocumentElement, name string) {
	node := d.element(el)
	if node == nil {
		return
	}
	kept := node.Attr[:0]
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	node.Attr = kept
}

// HasStyle implements port.WidgetDocument.
func (d *Document) HasStyle(marker string) bool {
	return len(d.styles(marker)) > 0
}

// AppendStyle implements port.WidgetDocument. The style element carries
// marker as its class so it can be found and removed later.
func (d *Document) AppendStyle(marker, css string) error {
	head := htmlquery.FindOne(d.root, headXPath)
	if head == nil {
		return fmt.Errorf("head: %w", entity.ErrElementNotFound)
	}
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "class", Val: marker}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	head.AppendChild(style)
	return nil
}

// RemoveStyles implements port.WidgetDocument.
func (d *Document) RemoveStyles(marker string) int {
	nodes := d.styles(marker)
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return len(nodes)
}

func (d *Document) styles(marker string) []*html.Node {
	if marker == "" || strings.ContainsAny(marker, `'"`) {
		return nil
	}
	xpath := "//style[contains(concat(' ', normalize-space(@class), ' '), ' " + marker + " ')]"
	nodes, err := htmlquery.QueryAll(d.root, xpath)
	if err != nil {
		return nil
	}
	return nodes
}

func (d *Document) element(el entity.DocumentElement) *html.Node {
	switch el {
	case entity.ElementBody:
		return htmlquery.FindOne(d.root, bodyXPath)
	case entity.ElementViewport:
		return htmlquery.FindOne(d.root, viewportXPath)
	default:
		return nil
	}
}
