// Package report turns a resolved analysis session into a serialisable report.
package report

import (
	"time"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analyser"
	"github.com/dtnitsch/page-analyser/pkg/mapreduce"
)

// Build resolves all three results of s and assembles a report. Words are
// counted before keywords so the keyword counts come from the word table.
func Build(s *analyser.Session, src models.Source, info models.PageInfo, topN int) models.Report {
	r := models.Report{
		Source:     src.String(),
		Mode:       src.Mode.String(),
		Page:       info,
		TopWords:   []models.WordCount{},
		AnalyzedAt: time.Now().UTC(),
	}

	if words, ok := s.WordCounts(); ok {
		r.DistinctWords = len(words)
		r.TotalWords = mapreduce.Total(words)
		r.TopWords = mapreduce.TopN(words, topN)
	}

	if keywords, ok := s.KeywordCounts(); ok {
		r.HasKeywords = true
		r.Keywords = mapreduce.Sorted(keywords)
	}

	r.ExternalLinks = s.ExternalLinkCount()
	return r
}
