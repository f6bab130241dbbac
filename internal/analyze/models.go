package analyze

import (
	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
)

type Job struct {
	Index  int
	Source models.Source
}

// Result holds the outcome of a processed job.
type Result struct {
	Index      int
	Source     models.Source
	Report     *models.Report
	WordCounts analytics.FrequencyTable
	Error      error
	ErrorType  string
}

// ResultOutput is the structured output for a single source.
type ResultOutput struct {
	Source    string         `json:"source" yaml:"source"`
	Status    string         `json:"status" yaml:"status"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType string         `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Report    *models.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalSources     int                `json:"total_sources" yaml:"total_sources"`
	Successful       int                `json:"successful" yaml:"successful"`
	Failed           int                `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64            `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopWords         []models.WordCount `json:"top_words,omitempty" yaml:"top_words,omitempty"`
}
