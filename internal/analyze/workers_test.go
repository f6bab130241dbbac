package analyze

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analyser"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/document"
)

type mapLoader map[string]string

func (m mapLoader) Load(ctx context.Context, src models.Source) (document.Tree, error) {
	markup, ok := m[src.Value]
	if !ok {
		return nil, errors.New("not found")
	}
	return document.FromString(markup)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRun_OrderAndAggregation(t *testing.T) {
	loader := mapLoader{
		"a": `<meta name="keywords" content="go"><p>go go rust</p><a href="https://a.example">a</a>`,
		"b": `<p>go zig</p>`,
	}
	sources := []models.Source{
		{Value: "a", Mode: models.SourceURL},
		{Value: "missing", Mode: models.SourceURL},
		{Value: "b", Mode: models.SourceURL},
	}
	cfg := runConfig{loader: loader, topN: 10, workers: 3}

	results, aggregated := run(context.Background(), discardLogger(), cfg, sources)
	if len(results) != 3 {
		t.Fatalf("run() returned %d results, want 3", len(results))
	}

	for i, src := range sources {
		if results[i].Source != src {
			t.Errorf("result %d source = %v, want %v", i, results[i].Source, src)
		}
	}

	if results[1].Error == nil || results[1].ErrorType != "load_error" {
		t.Errorf("missing source: error = %v, type = %q", results[1].Error, results[1].ErrorType)
	}
	if !errors.Is(results[1].Error, analyser.ErrLoad) {
		t.Errorf("missing source error %v is not ErrLoad", results[1].Error)
	}

	a := results[0].Report
	if a == nil || a.ExternalLinks != 1 || !a.HasKeywords || a.Keywords[0].Count != 2 {
		t.Errorf("report a = %+v", a)
	}

	// "a" is link text in document a.
	want := analytics.FrequencyTable{"go": 3, "rust": 1, "zig": 1, "a": 1}
	if !reflect.DeepEqual(aggregated, want) {
		t.Errorf("aggregated = %v, want %v", aggregated, want)
	}
}

func TestRun_AppliesOptions(t *testing.T) {
	loader := mapLoader{"a": `<p>The cat and the hat</p>`}
	cfg := runConfig{
		loader:  loader,
		options: analyser.Options{Stopwords: "the and"},
		workers: 1,
	}

	results, _ := run(context.Background(), discardLogger(), cfg, []models.Source{{Value: "a", Mode: models.SourceURL}})
	want := analytics.FrequencyTable{"cat": 1, "hat": 1}
	if !reflect.DeepEqual(results[0].WordCounts, want) {
		t.Errorf("words = %v, want %v", results[0].WordCounts, want)
	}
}

func TestBuildOutput(t *testing.T) {
	report := &models.Report{Source: "a"}
	results := []Result{
		{Source: models.Source{Value: "a"}, Report: report},
		{Source: models.Source{Value: "b"}, Error: errors.New("boom"), ErrorType: "load_error"},
	}

	out := buildOutput(results, analytics.FrequencyTable{"go": 2, "rust": 1}, 1)
	if out.Status != "partial" {
		t.Errorf("Status = %q, want partial", out.Status)
	}
	if out.Stats.Successful != 1 || out.Stats.Failed != 1 || out.Stats.TotalSources != 2 {
		t.Errorf("Stats = %+v", out.Stats)
	}
	if out.Results[1].Status != "failed" || out.Results[1].Error != "boom" {
		t.Errorf("failed result = %+v", out.Results[1])
	}
	if len(out.Stats.TopWords) != 1 || out.Stats.TopWords[0].Word != "go" {
		t.Errorf("TopWords = %v", out.Stats.TopWords)
	}

	single := buildOutput(results[:1], analytics.FrequencyTable{"go": 2}, 5)
	if single.Status != "success" || single.Stats.TopWords != nil {
		t.Errorf("single source output = %+v", single)
	}

	failed := buildOutput(results[1:], nil, 5)
	if failed.Status != "failed" {
		t.Errorf("Status = %q, want failed", failed.Status)
	}
}
