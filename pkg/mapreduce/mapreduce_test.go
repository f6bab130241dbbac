package mapreduce

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
)

func TestReduce(t *testing.T) {
	got := Reduce([]analytics.FrequencyTable{
		{"go": 2, "rust": 1},
		nil,
		{"go": 3, "zig": 1},
	})
	want := analytics.FrequencyTable{"go": 5, "rust": 1, "zig": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}

	if got := Reduce(nil); len(got) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", got)
	}
}

func TestTotal(t *testing.T) {
	if got := Total(analytics.FrequencyTable{"a": 2, "b": 3}); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %d, want 0", got)
	}
}

func TestTopN(t *testing.T) {
	table := analytics.FrequencyTable{"beta": 2, "alpha": 2, "gamma": 5, "delta": 1}

	got := TopN(table, 3)
	want := []models.WordCount{
		{Word: "gamma", Count: 5},
		{Word: "alpha", Count: 2},
		{Word: "beta", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN() = %v, want %v", got, want)
	}

	if got := TopN(table, 0); len(got) != 4 {
		t.Errorf("TopN(0) returned %d entries, want 4", len(got))
	}
	if got := TopN(table, 10); len(got) != 4 {
		t.Errorf("TopN(10) returned %d entries, want 4", len(got))
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	PrintTopKeywords(&buf, analytics.FrequencyTable{"go": 3, "rust": 1}, 5)

	want := "1. go: 3\n2. rust: 1\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
