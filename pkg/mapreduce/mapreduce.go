package mapreduce

import "github.com/dtnitsch/page-analyser/pkg/analytics"

// Reduce aggregates a slice of word frequency tables into a single table.
// Nil tables are skipped.
func Reduce(intermediate []analytics.FrequencyTable) analytics.FrequencyTable {
	finalResults := make(analytics.FrequencyTable)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// Total returns the sum of all counts in table.
func Total(table analytics.FrequencyTable) int {
	total := 0
	for _, count := range table {
		total += count
	}
	return total
}
