package analyser

import (
	"strings"

	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/document"
)

const keywordsMetaName = "keywords"

// ExtractKeywords reads the page's <meta name="keywords"> declaration and
// returns every distinct keyword mapped to zero. ok is false when the tag is
// missing, its content is empty, or it declares nothing.
func ExtractKeywords(tree document.Tree, delimiters []rune) (analytics.FrequencyTable, bool) {
	var content string
	for _, meta := range tree.SelectAll("meta[name]") {
		if strings.EqualFold(meta.Attr("name", ""), keywordsMetaName) {
			content = meta.Attr("content", "")
			break
		}
	}
	if content == "" {
		return nil, false
	}

	keywords := analytics.FrequencyTable{}
	for _, kw := range analytics.Split(content, delimiters) {
		keywords[strings.ToLower(kw)] = 0
	}
	if len(keywords) == 0 {
		return nil, false
	}
	return keywords, true
}

// CountKeywords fills in occurrence counts for keywords.
//
// When words is non-nil it is the session's resolved word table and counts are
// looked up there without touching the document. Otherwise the document is
// walked once more, counting only tokens already present in keywords.
func CountKeywords(tree document.Tree, keywords, words analytics.FrequencyTable, stopwords analytics.StopwordSet, delimiters []rune) analytics.FrequencyTable {
	if words != nil {
		counts := make(analytics.FrequencyTable, len(keywords))
		for kw := range keywords {
			counts[kw] = words[kw]
		}
		return counts
	}

	countText(tree, keywords, stopwords, delimiters, false)
	return keywords
}
