package analyser

import (
	"net/url"
	"strings"

	"github.com/dtnitsch/page-analyser/pkg/document"
)

var skippedLinkPrefixes = []string{"javascript:", "#"}

// CountExternalLinks counts anchors whose href is a syntactically absolute
// URL. Pseudo-protocol and same-page fragment links are ignored, and relative
// links are never resolved against the page address.
func CountExternalLinks(tree document.Tree) int {
	count := 0
	for _, a := range tree.SelectAll("a[href]") {
		href := strings.TrimSpace(a.Attr("href", ""))
		if hasPrefixFold(href, skippedLinkPrefixes...) {
			continue
		}
		u, err := url.Parse(href)
		if err != nil {
			continue
		}
		if u.IsAbs() {
			count++
		}
	}
	return count
}

func hasPrefixFold(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}
