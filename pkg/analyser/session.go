// Package analyser computes word, keyword and outbound link statistics for a
// single loaded HTML document.
package analyser

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/document"
)

// Loader turns a source into a parsed document.
type Loader interface {
	Load(ctx context.Context, src models.Source) (document.Tree, error)
}

// Options configures a Session. The zero value uses the default delimiters,
// no stopwords and a silent logger.
type Options struct {
	// Stopwords is a raw ignore list, tokenized with Delimiters.
	Stopwords string
	// Delimiters overrides analytics.DefaultDelimiters when non-empty.
	Delimiters []rune
	Logger     *slog.Logger
}

// Session binds one document to its three memoised analysis results.
//
// Results are computed on first request and never recomputed. A Session is
// not safe for concurrent first access; callers sharing one across goroutines
// must serialise the first call to each accessor.
type Session struct {
	tree       document.Tree
	stopwords  analytics.StopwordSet
	delimiters []rune
	logger     *slog.Logger

	words    cached[analytics.FrequencyTable]
	keywords cached[analytics.FrequencyTable]
	links    cached[int]
}

// New binds an already-parsed document.
func New(tree document.Tree, opts Options) *Session {
	delimiters := opts.Delimiters
	if len(delimiters) == 0 {
		delimiters = analytics.DefaultDelimiters
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Session{
		tree:       tree,
		stopwords:  analytics.NewStopwordSet(opts.Stopwords, delimiters),
		delimiters: delimiters,
		logger:     logger,
	}
}

// Open loads src through loader and binds the result. Any loader failure is
// returned as a *LoadError and no session is created.
func Open(ctx context.Context, loader Loader, src models.Source, opts Options) (*Session, error) {
	tree, err := loader.Load(ctx, src)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	return New(tree, opts), nil
}

// Tree returns the bound document.
func (s *Session) Tree() document.Tree {
	return s.tree
}

// WordCounts returns the frequency of every visible word. ok is false when the
// page contains no words.
func (s *Session) WordCounts() (analytics.FrequencyTable, bool) {
	return s.words.get(func() (analytics.FrequencyTable, bool) {
		words, ok := CollectWordCounts(s.tree, s.stopwords, s.delimiters)
		s.logger.Debug("word counts computed", "distinct", len(words))
		return words, ok
	})
}

// KeywordCounts returns the occurrence count of each declared meta keyword.
// ok is false when the page declares no keywords. When WordCounts has already
// run, counts are taken from its table instead of re-scanning the page.
func (s *Session) KeywordCounts() (analytics.FrequencyTable, bool) {
	return s.keywords.get(func() (analytics.FrequencyTable, bool) {
		keywords, ok := ExtractKeywords(s.tree, s.delimiters)
		if !ok {
			s.logger.Debug("no keywords declared")
			return nil, false
		}

		// A resolved but empty word table still counts as resolved.
		var words analytics.FrequencyTable
		if table, _, resolved := s.words.peek(); resolved {
			words = table
			if words == nil {
				words = analytics.FrequencyTable{}
			}
		}
		s.logger.Debug("counting keywords", "keywords", len(keywords), "from_word_table", words != nil)
		return CountKeywords(s.tree, keywords, words, s.stopwords, s.delimiters), true
	})
}

// ExternalLinkCount returns the number of anchors pointing at absolute URLs.
func (s *Session) ExternalLinkCount() int {
	count, _ := s.links.get(func() (int, bool) {
		n := CountExternalLinks(s.tree)
		s.logger.Debug("external links counted", "count", n)
		return n, true
	})
	return count
}
