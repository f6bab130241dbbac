package analyser

import (
	"strings"

	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/document"
)

const scriptContainer = "script"

// countText feeds every visible text leaf of tree into table.
func countText(tree document.Tree, table analytics.FrequencyTable, stopwords analytics.StopwordSet, delimiters []rune, allowNewKeys bool) {
	for _, leaf := range tree.TextLeaves() {
		if strings.EqualFold(leaf.Container, scriptContainer) {
			continue
		}
		text := analytics.Normalize(leaf.Text)
		if text == "" {
			continue
		}
		analytics.CountInto(text, table, stopwords, delimiters, allowNewKeys)
	}
}

// CollectWordCounts counts every word in the visible text of tree.
// ok is false when the document holds no words.
func CollectWordCounts(tree document.Tree, stopwords analytics.StopwordSet, delimiters []rune) (analytics.FrequencyTable, bool) {
	words := analytics.FrequencyTable{}
	countText(tree, words, stopwords, delimiters, true)
	if len(words) == 0 {
		return nil, false
	}
	return words, true
}
