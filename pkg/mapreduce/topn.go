package mapreduce

import (
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
)

// Sorted returns every entry of table ordered by count (descending), then
// word (ascending) so that ties are stable across runs.
func Sorted(table analytics.FrequencyTable) []models.WordCount {
	ss := make([]models.WordCount, 0, len(table))
	for k, v := range table {
		ss = append(ss, models.WordCount{Word: k, Count: v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})

	return ss
}

// TopN returns the n most frequent entries of table. n <= 0 returns all of them.
func TopN(table analytics.FrequencyTable, n int) []models.WordCount {
	ss := Sorted(table)
	if n > 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// PrintTopKeywords prints the top N entries in a numbered list format.
func PrintTopKeywords(w io.Writer, table analytics.FrequencyTable, n int) {
	for i, wc := range TopN(table, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
}
