// Package document defines the read-only view of a parsed HTML page that the
// analyser works against, plus a goquery-backed implementation.
package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Leaf is a text node together with the tag name of its nearest enclosing
// element ("" when the text hangs directly off the document).
type Leaf struct {
	Text      string
	Container string
}

// Element is an element node whose attributes can be read.
type Element interface {
	// Attr returns the attribute value, or def when the attribute is missing.
	Attr(name, def string) string
}

// Tree is the capability set the analyser needs from a parsed document.
type Tree interface {
	// TextLeaves returns every text node in document order.
	TextLeaves() []Leaf
	// SelectAll returns every element matching a CSS selector, in document order.
	SelectAll(selector string) []Element
}

// rawTextElements hold text the tokenizer never decodes, so the ampersand
// escaping applied in FromReader has to be undone for their leaves.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// Doc adapts a goquery document to Tree.
//
// Text leaves and attribute values are the raw source text: character
// references such as &amp; or &#72; are left in place for the analyser to
// strip, and <noscript> content is parsed as ordinary elements.
type Doc struct {
	doc     *goquery.Document
	source  []byte
	decoded *goquery.Document
}

// FromReader parses HTML from r.
func FromReader(r io.Reader) (*Doc, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read HTML: %w", err)
	}
	// Escaping every ampersand makes the parser's entity decoding hand back
	// the original character references verbatim.
	root, err := parseHTML(bytes.ReplaceAll(source, []byte("&"), []byte("&amp;")))
	if err != nil {
		return nil, err
	}
	return &Doc{doc: goquery.NewDocumentFromNode(root), source: source}, nil
}

// FromString parses an HTML string.
func FromString(markup string) (*Doc, error) {
	return FromReader(strings.NewReader(markup))
}

func parseHTML(source []byte) (*html.Node, error) {
	root, err := html.ParseWithOptions(bytes.NewReader(source), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return root, nil
}

// Goquery returns the page parsed normally, with character references
// decoded. It is built on first use.
func (d *Doc) Goquery() *goquery.Document {
	if d.decoded == nil {
		root, err := parseHTML(d.source)
		if err != nil {
			// Unreachable for an in-memory reader.
			return d.doc
		}
		d.decoded = goquery.NewDocumentFromNode(root)
	}
	return d.decoded
}

func (d *Doc) TextLeaves() []Leaf {
	var leaves []Leaf
	for _, root := range d.doc.Nodes {
		leaves = collectLeaves(root, leaves)
	}
	return leaves
}

func collectLeaves(n *html.Node, leaves []Leaf) []Leaf {
	if n.Type == html.TextNode {
		container := ""
		if n.Parent != nil && n.Parent.Type == html.ElementNode {
			container = n.Parent.Data
		}
		text := n.Data
		if rawTextElements[container] {
			text = strings.ReplaceAll(text, "&amp;", "&")
		}
		return append(leaves, Leaf{Text: text, Container: container})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		leaves = collectLeaves(c, leaves)
	}
	return leaves
}

func (d *Doc) SelectAll(selector string) []Element {
	var elements []Element
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		elements = append(elements, selection{s})
	})
	return elements
}

type selection struct {
	s *goquery.Selection
}

func (e selection) Attr(name, def string) string {
	return e.s.AttrOr(name, def)
}
