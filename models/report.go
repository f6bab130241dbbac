package models

import "time"

// WordCount is one ranked entry of a frequency table.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// PageInfo is descriptive metadata read from the page, when available.
type PageInfo struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Excerpt  string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	SiteName string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Byline   string `json:"byline,omitempty" yaml:"byline,omitempty"`
}

// Report is the analysis outcome for one document.
type Report struct {
	ID            int64       `json:"id,omitempty" yaml:"id,omitempty"`
	Source        string      `json:"source" yaml:"source"`
	Mode          string      `json:"mode" yaml:"mode"`
	Page          PageInfo    `json:"page" yaml:"page"`
	DistinctWords int         `json:"distinct_words" yaml:"distinct_words"`
	TotalWords    int         `json:"total_words" yaml:"total_words"`
	TopWords      []WordCount `json:"top_words" yaml:"top_words"`
	HasKeywords   bool        `json:"has_keywords" yaml:"has_keywords"`
	Keywords      []WordCount `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	ExternalLinks int         `json:"external_links" yaml:"external_links"`
	AnalyzedAt    time.Time   `json:"analyzed_at" yaml:"analyzed_at"`
}

// ReportSummary is a row of the stored history.
type ReportSummary struct {
	ID            int64     `json:"id" yaml:"id"`
	Source        string    `json:"source" yaml:"source"`
	Title         string    `json:"title,omitempty" yaml:"title,omitempty"`
	DistinctWords int       `json:"distinct_words" yaml:"distinct_words"`
	ExternalLinks int       `json:"external_links" yaml:"external_links"`
	AnalyzedAt    time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}
