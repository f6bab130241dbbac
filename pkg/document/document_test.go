package document

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, markup string) *Doc {
	t.Helper()

	doc, err := FromString(markup)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	return doc
}

func TestTextLeaves_OrderAndContainers(t *testing.T) {
	doc := mustParse(t, `<html><head><script>ignore()</script></head><body><p>Hello <b>bold</b> tail</p><!-- note --></body></html>`)

	leaves := doc.TextLeaves()
	want := []Leaf{
		{Text: "ignore()", Container: "script"},
		{Text: "Hello ", Container: "p"},
		{Text: "bold", Container: "b"},
		{Text: " tail", Container: "p"},
	}

	if len(leaves) != len(want) {
		t.Fatalf("TextLeaves() returned %d leaves, want %d: %+v", len(leaves), len(want), leaves)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, leaves[i], want[i])
		}
	}
}

func TestSelectAll_Attr(t *testing.T) {
	doc := mustParse(t, `<a href="https://x.com">x</a><a name="top">no href</a><a href="">empty</a>`)

	links := doc.SelectAll("a[href]")
	if len(links) != 2 {
		t.Fatalf("SelectAll(a[href]) = %d elements, want 2", len(links))
	}
	if got := links[0].Attr("href", "-"); got != "https://x.com" {
		t.Errorf("Attr(href) = %q, want %q", got, "https://x.com")
	}
	if got := links[1].Attr("href", "-"); got != "" {
		t.Errorf("Attr(href) on empty attribute = %q, want empty", got)
	}
	if got := links[0].Attr("title", "default"); got != "default" {
		t.Errorf("Attr(missing) = %q, want default", got)
	}
}

func TestSelectAll_NoMatch(t *testing.T) {
	doc := mustParse(t, `<p>nothing here</p>`)

	if got := doc.SelectAll("meta[name]"); len(got) != 0 {
		t.Errorf("SelectAll() = %v, want none", got)
	}
}

func TestFromReader(t *testing.T) {
	doc, err := FromReader(strings.NewReader("<title>T</title>"))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if got := doc.Goquery().Find("title").Text(); got != "T" {
		t.Errorf("title = %q, want T", got)
	}
}

func TestTextLeaves_NoscriptParsedAsElements(t *testing.T) {
	doc := mustParse(t, `<body><noscript><p>Enable JS</p><a href="https://x.com">x</a></noscript><p>x</p></body>`)

	leaves := doc.TextLeaves()
	want := []Leaf{
		{Text: "Enable JS", Container: "p"},
		{Text: "x", Container: "a"},
		{Text: "x", Container: "p"},
	}
	if len(leaves) != len(want) {
		t.Fatalf("TextLeaves() returned %d leaves, want %d: %+v", len(leaves), len(want), leaves)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, leaves[i], want[i])
		}
	}

	if links := doc.SelectAll("a[href]"); len(links) != 1 {
		t.Errorf("SelectAll(a[href]) = %d elements, want 1", len(links))
	}
}

func TestTextLeaves_KeepsCharacterReferences(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   Leaf
	}{
		{"numeric", `<p>&#72;ello &#x57;orld</p>`, Leaf{Text: "&#72;ello &#x57;orld", Container: "p"}},
		{"named", `<p>caf&eacute; a &amp;lt; b</p>`, Leaf{Text: "caf&eacute; a &amp;lt; b", Container: "p"}},
		{"bare ampersand", `<p>AT&T</p>`, Leaf{Text: "AT&T", Container: "p"}},
		{"raw text element", `<style>a&&b</style>`, Leaf{Text: "a&&b", Container: "style"}},
		{"rcdata element", `<title>Tom &amp; Jerry</title>`, Leaf{Text: "Tom &amp; Jerry", Container: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := mustParse(t, tt.markup).TextLeaves()
			if len(leaves) != 1 {
				t.Fatalf("TextLeaves() = %+v, want one leaf", leaves)
			}
			if leaves[0] != tt.want {
				t.Errorf("leaf = %+v, want %+v", leaves[0], tt.want)
			}
		})
	}
}

func TestSelectAll_AttrIsRaw(t *testing.T) {
	doc := mustParse(t, `<a href="https://x.com/?a=1&amp;b=2">x</a>`)

	links := doc.SelectAll("a[href]")
	if len(links) != 1 {
		t.Fatalf("SelectAll(a[href]) = %d elements, want 1", len(links))
	}
	if got := links[0].Attr("href", ""); got != "https://x.com/?a=1&amp;b=2" {
		t.Errorf("Attr(href) = %q", got)
	}
}

func TestGoquery_DecodesEntities(t *testing.T) {
	doc := mustParse(t, `<title>Tom &amp; Jerry</title>`)

	if got := doc.Goquery().Find("title").Text(); got != "Tom & Jerry" {
		t.Errorf("title = %q, want %q", got, "Tom & Jerry")
	}
}
