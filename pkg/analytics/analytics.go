package analytics

import (
	"regexp"
	"strings"
)

// FrequencyTable maps a lower-cased word to the number of times it was seen.
// Counts only ever grow while a table is being filled.
type FrequencyTable map[string]int

// StopwordSet is a membership set of words that may not be inserted as new
// keys. A nil set means no stopwords are configured.
type StopwordSet map[string]struct{}

// Contains reports whether word is a member. Safe on a nil set.
func (s StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s[word]
	return ok
}

// DefaultDelimiters is the separator set used when none is configured.
var DefaultDelimiters = []rune{' ', ',', '.', '\r', '\n', '\t', '/'}

var (
	entityRe    = regexp.MustCompile(`&[^\s;]+;`)
	nonLetterRe = regexp.MustCompile(`[^a-zA-Z]+`)
)

// Normalize removes character entity references (without decoding them),
// collapses every run of non-ASCII-letters into one space and trims the result.
func Normalize(text string) string {
	text = entityRe.ReplaceAllString(text, " ")
	text = nonLetterRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Split breaks text on any rune in delimiters and drops empty fragments.
func Split(text string, delimiters []rune) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		for _, d := range delimiters {
			if r == d {
				return true
			}
		}
		return false
	})
}

// CountInto tokenizes text and merges the tokens into table.
//
// A token that is already a key is always incremented, even when it is a
// stopword or allowNewKeys is false. A token that is not yet a key is inserted
// with count 1 only when allowNewKeys is set and it is not in stopwords;
// otherwise it is dropped.
func CountInto(text string, table FrequencyTable, stopwords StopwordSet, delimiters []rune, allowNewKeys bool) {
	if text == "" {
		return
	}

	for _, word := range Split(text, delimiters) {
		word = strings.ToLower(word)
		if _, ok := table[word]; ok {
			table[word]++
			continue
		}
		if allowNewKeys && !stopwords.Contains(word) {
			table[word] = 1
		}
	}
}

// NewStopwordSet builds a stopword set from a raw ignore list using the same
// split and case folding as regular text. It returns nil when raw yields no
// words.
func NewStopwordSet(raw string, delimiters []rune) StopwordSet {
	if raw == "" {
		return nil
	}

	table := FrequencyTable{}
	CountInto(raw, table, nil, delimiters, true)
	if len(table) == 0 {
		return nil
	}

	set := make(StopwordSet, len(table))
	for word := range table {
		set[word] = struct{}{}
	}
	return set
}

// ParseDelimiters turns a flag value such as " ,.;" into a delimiter set.
// The escapes \n, \r and \t are understood. An empty value yields the defaults.
func ParseDelimiters(value string) []rune {
	if value == "" {
		return DefaultDelimiters
	}

	value = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t").Replace(value)

	seen := make(map[rune]struct{})
	var delimiters []rune
	for _, r := range value {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		delimiters = append(delimiters, r)
	}
	return delimiters
}
